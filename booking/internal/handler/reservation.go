package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

// CreateReservation godoc
// @Summary Reserve a seat
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.CreateReservationRequest true "request body"
// @Success 201 {object} model.Response{data=model.Reservation}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /users/me/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateReservationRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	rsv, err := h.bookingSvc.CreateReservation(c.Request().Context(), p.UserID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.OKMessage("reservation created", rsv))
}

// CancelReservation godoc
// @Summary Cancel own reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservationId path string true "reservation id"
// @Success 200 {object} model.Response{data=model.Reservation}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /users/me/reservations/{reservationId} [delete]
func (h *Handler) CancelReservation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "reservationId", "reservation")
	if err != nil {
		return err
	}
	rsv, err := h.bookingSvc.CancelReservation(c.Request().Context(), p.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage("reservation cancelled", rsv))
}

// AdminCancelReservation godoc
// @Summary Cancel a reservation in a library
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param reservationId path string true "reservation id"
// @Success 200 {object} model.Response{data=model.Reservation}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/reservations/{reservationId} [delete]
func (h *Handler) AdminCancelReservation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	id, err := idParam(c, "reservationId", "reservation")
	if err != nil {
		return err
	}
	rsv, err := h.bookingSvc.AdminCancelReservation(c.Request().Context(), p.UserID, libraryID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage("reservation cancelled", rsv))
}

// ListMyReservations godoc
// @Summary List own reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE, CANCELLED or COMPLETED"
// @Param startDate query string false "RFC3339 range start"
// @Param endDate query string false "RFC3339 range end"
// @Success 200 {object} model.Response{data=[]model.Reservation}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Router /users/me/reservations [get]
func (h *Handler) ListMyReservations(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	f, err := reservationFilter(c)
	if err != nil {
		return err
	}
	list, err := h.bookingSvc.ListUserReservations(c.Request().Context(), p.UserID, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(list))
}

// ListLibraryReservations godoc
// @Summary List reservations of a library
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param status query string false "ACTIVE, CANCELLED or COMPLETED"
// @Param startDate query string false "RFC3339 range start"
// @Param endDate query string false "RFC3339 range end"
// @Success 200 {object} model.Response{data=[]model.Reservation}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/reservations [get]
func (h *Handler) ListLibraryReservations(c echo.Context) error {
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	f, err := reservationFilter(c)
	if err != nil {
		return err
	}
	list, err := h.bookingSvc.ListLibraryReservations(c.Request().Context(), libraryID, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(list))
}

// ListSeatReservations godoc
// @Summary List reservations of a seat
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param seatId path string true "seat id"
// @Param status query string false "ACTIVE, CANCELLED or COMPLETED"
// @Param startDate query string false "RFC3339 range start"
// @Param endDate query string false "RFC3339 range end"
// @Success 200 {object} model.Response{data=[]model.Reservation}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /seats/{seatId}/reservations [get]
func (h *Handler) ListSeatReservations(c echo.Context) error {
	seatID, err := idParam(c, "seatId", "seat")
	if err != nil {
		return err
	}
	f, err := reservationFilter(c)
	if err != nil {
		return err
	}
	list, err := h.bookingSvc.ListSeatReservations(c.Request().Context(), seatID, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(list))
}
