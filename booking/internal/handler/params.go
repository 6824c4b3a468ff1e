package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

func idParam(c echo.Context, name, entity string) (string, error) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", errs.Validation("invalid " + entity + " id")
	}
	return id, nil
}

func principal(c echo.Context) (auth.Principal, error) {
	p, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}
	return p, nil
}

// bindValid binds the request body into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.Validation("invalid request body")
	}
	return c.Validate(req)
}

func reservationFilter(c echo.Context) (model.ReservationFilter, error) {
	var f model.ReservationFilter
	if status := c.QueryParam("status"); status != "" {
		f.Status = model.ReservationStatus(status)
		if !f.Status.Valid() {
			return f, errs.Validation("invalid status", "status must be one of [ACTIVE CANCELLED COMPLETED]")
		}
	}
	start, err := timeQuery(c, "startDate")
	if err != nil {
		return f, err
	}
	end, err := timeQuery(c, "endDate")
	if err != nil {
		return f, err
	}
	f.StartDate, f.EndDate = start, end
	return f.Normalize(), nil
}

func timeQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.Validation("invalid "+name, name+" must be an RFC3339 datetime")
	}
	return &t, nil
}

func boolQuery(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))
	return v
}
