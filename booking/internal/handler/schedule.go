package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

// GetSchedule godoc
// @Summary Get library opening hours
// @Tags schedules
// @Produce json
// @Param libraryId path string true "library id"
// @Success 200 {object} model.Response{data=model.ScheduleView}
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/schedule [get]
func (h *Handler) GetSchedule(c echo.Context) error {
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	view, err := h.bookingSvc.GetSchedule(c.Request().Context(), libraryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(view))
}

// CreateSchedule godoc
// @Summary Create library opening hours
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param input body model.ScheduleRequest true "request body"
// @Success 201 {object} model.Response{data=model.Schedule}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries/{libraryId}/schedule [post]
func (h *Handler) CreateSchedule(c echo.Context) error {
	libraryID, week, err := scheduleRequest(c)
	if err != nil {
		return err
	}
	sch, err := h.bookingSvc.CreateSchedule(c.Request().Context(), libraryID, week)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.OKMessage("schedule created", sch))
}

// UpdateSchedule godoc
// @Summary Update library opening hours
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param input body model.ScheduleRequest true "request body"
// @Success 200 {object} model.Response{data=model.Schedule}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/schedule [put]
func (h *Handler) UpdateSchedule(c echo.Context) error {
	libraryID, week, err := scheduleRequest(c)
	if err != nil {
		return err
	}
	sch, err := h.bookingSvc.UpdateSchedule(c.Request().Context(), libraryID, week)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage("schedule updated", sch))
}

// DeleteSchedule godoc
// @Summary Delete library opening hours
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Success 204
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/schedule [delete]
func (h *Handler) DeleteSchedule(c echo.Context) error {
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	if err := h.bookingSvc.DeleteSchedule(c.Request().Context(), libraryID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func scheduleRequest(c echo.Context) (string, model.WeeklySchedule, error) {
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return "", model.WeeklySchedule{}, err
	}
	var req model.ScheduleRequest
	if err := bindValid(c, &req); err != nil {
		return "", model.WeeklySchedule{}, err
	}
	return libraryID, *req.Schedule, nil
}
