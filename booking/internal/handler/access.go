package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/pkg/auth"
)

const msgNotAuthorized = "not authorized to perform this action"

func requireRoles(allowed ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := auth.FromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}
			if !auth.HasRole(p.Role, allowed...) {
				return echo.NewHTTPError(http.StatusForbidden, msgNotAuthorized)
			}
			return next(c)
		}
	}
}

// requireLibraryOwner lets through admins and librarians of the target library.
// The library comes from :libraryId, or from the seat when only :seatId is routed.
func (h *Handler) requireLibraryOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		p, ok := auth.FromContext(ctx)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
		}
		if c.Param("libraryId") != "" {
			libraryID, err := idParam(c, "libraryId", "library")
			if err != nil {
				return err
			}
			if err := h.bookingSvc.AuthorizeLibrary(ctx, p, libraryID); err != nil {
				return err
			}
			return next(c)
		}
		seatID, err := idParam(c, "seatId", "seat")
		if err != nil {
			return err
		}
		if err := h.bookingSvc.AuthorizeSeat(ctx, p, seatID); err != nil {
			return err
		}
		return next(c)
	}
}
