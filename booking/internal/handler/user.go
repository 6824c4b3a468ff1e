package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

// Register godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param input body model.RegisterRequest true "request body"
// @Success 201 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /users/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := h.bookingSvc.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.OKMessage("user registered", user))
}

// Login godoc
// @Summary Log in and get a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param input body model.LoginRequest true "request body"
// @Success 200 {object} model.Response{data=model.LoginResponse}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Router /users/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.bookingSvc.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(resp))
}

// Profile godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response{data=model.User}
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /users/profile [get]
func (h *Handler) Profile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	user, err := h.bookingSvc.Profile(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(user))
}

// UpdateProfile godoc
// @Summary Update current user name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.UpdateProfileRequest true "request body"
// @Success 200 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Router /users/profile [patch]
func (h *Handler) UpdateProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.UpdateProfileRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := h.bookingSvc.UpdateProfile(c.Request().Context(), p.UserID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(user))
}

// AssignLibrarian godoc
// @Summary Assign a user as librarian of a library
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param input body model.LibrarianRequest true "request body"
// @Success 200 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /users/{userId}/librarian [post]
func (h *Handler) AssignLibrarian(c echo.Context) error {
	return h.librarian(c, h.bookingSvc.AssignLibrarian, "librarian assigned")
}

// RevokeLibrarian godoc
// @Summary Revoke librarian role for a library
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param input body model.LibrarianRequest true "request body"
// @Success 200 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /users/{userId}/librarian [delete]
func (h *Handler) RevokeLibrarian(c echo.Context) error {
	return h.librarian(c, h.bookingSvc.RevokeLibrarian, "librarian revoked")
}

func (h *Handler) librarian(c echo.Context, op func(ctx context.Context, userID, libraryID string) (model.User, error), msg string) error {
	userID, err := idParam(c, "userId", "user")
	if err != nil {
		return err
	}
	var req model.LibrarianRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := op(c.Request().Context(), userID, req.LibraryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage(msg, user))
}
