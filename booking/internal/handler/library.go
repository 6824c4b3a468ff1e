package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

// ListLibraries godoc
// @Summary List libraries
// @Tags libraries
// @Produce json
// @Param includeInactive query boolean false "include inactive libraries"
// @Success 200 {object} model.Response{data=[]model.Library}
// @Router /libraries [get]
func (h *Handler) ListLibraries(c echo.Context) error {
	f := model.LibraryFilter{IncludeInactive: boolQuery(c, "includeInactive")}
	libs, err := h.bookingSvc.ListLibraries(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(libs))
}

// CreateLibrary godoc
// @Summary Create a library
// @Tags libraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.LibraryRequest true "request body"
// @Success 201 {object} model.Response{data=model.Library}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries [post]
func (h *Handler) CreateLibrary(c echo.Context) error {
	var req model.LibraryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	lib, err := h.bookingSvc.CreateLibrary(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.OKMessage("library created", lib))
}

// GetLibrary godoc
// @Summary Get a library
// @Tags libraries
// @Produce json
// @Param libraryId path string true "library id"
// @Success 200 {object} model.Response{data=model.Library}
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId} [get]
func (h *Handler) GetLibrary(c echo.Context) error {
	id, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	lib, err := h.bookingSvc.GetLibrary(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(lib))
}

// GetLibraryByCode godoc
// @Summary Get a library by code
// @Tags libraries
// @Produce json
// @Param code path string true "library code"
// @Success 200 {object} model.Response{data=model.Library}
// @Failure 404 {object} model.Response
// @Router /libraries/code/{code} [get]
func (h *Handler) GetLibraryByCode(c echo.Context) error {
	lib, err := h.bookingSvc.GetLibraryByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(lib))
}

// UpdateLibrary godoc
// @Summary Update a library
// @Tags libraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param input body model.LibraryPatch true "request body"
// @Success 200 {object} model.Response{data=model.Library}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries/{libraryId} [put]
func (h *Handler) UpdateLibrary(c echo.Context) error {
	id, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	var patch model.LibraryPatch
	if err := bindValid(c, &patch); err != nil {
		return err
	}
	lib, err := h.bookingSvc.UpdateLibrary(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage("library updated", lib))
}

// SetLibraryStatus godoc
// @Summary Activate or deactivate a library
// @Tags libraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param input body model.LibraryStatusRequest true "request body"
// @Success 200 {object} model.Response{data=model.Library}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/status [patch]
func (h *Handler) SetLibraryStatus(c echo.Context) error {
	id, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	var req model.LibraryStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	lib, err := h.bookingSvc.SetLibraryStatus(c.Request().Context(), id, *req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(lib))
}

// DeleteLibrary godoc
// @Summary Delete a library
// @Tags libraries
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Success 204
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId} [delete]
func (h *Handler) DeleteLibrary(c echo.Context) error {
	id, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	if err := h.bookingSvc.DeleteLibrary(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
