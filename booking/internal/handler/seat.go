package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

// ListSeats godoc
// @Summary List seats of a library
// @Tags seats
// @Produce json
// @Param libraryId path string true "library id"
// @Param floor query string false "floor filter"
// @Param area query string false "area filter"
// @Success 200 {object} model.Response{data=[]model.Seat}
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/seats [get]
func (h *Handler) ListSeats(c echo.Context) error {
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	seats, err := h.bookingSvc.ListSeats(c.Request().Context(), model.SeatFilter{
		LibraryID: libraryID,
		Floor:     c.QueryParam("floor"),
		Area:      c.QueryParam("area"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(seats))
}

// CreateSeat godoc
// @Summary Create a seat
// @Tags seats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param input body model.SeatRequest true "request body"
// @Success 201 {object} model.Response{data=model.Seat}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries/{libraryId}/seats [post]
func (h *Handler) CreateSeat(c echo.Context) error {
	libraryID, err := idParam(c, "libraryId", "library")
	if err != nil {
		return err
	}
	var req model.SeatRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	seat, err := h.bookingSvc.CreateSeat(c.Request().Context(), libraryID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.OKMessage("seat created", seat))
}

// GetSeat godoc
// @Summary Get a seat
// @Tags seats
// @Produce json
// @Param libraryId path string true "library id"
// @Param seatId path string true "seat id"
// @Success 200 {object} model.Response{data=model.Seat}
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /libraries/{libraryId}/seats/{seatId} [get]
func (h *Handler) GetSeat(c echo.Context) error {
	libraryID, seatID, err := seatParams(c)
	if err != nil {
		return err
	}
	seat, err := h.bookingSvc.GetSeat(c.Request().Context(), libraryID, seatID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OK(seat))
}

// UpdateSeat godoc
// @Summary Replace a seat
// @Tags seats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param seatId path string true "seat id"
// @Param input body model.SeatRequest true "request body"
// @Success 200 {object} model.Response{data=model.Seat}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries/{libraryId}/seats/{seatId} [put]
func (h *Handler) UpdateSeat(c echo.Context) error {
	libraryID, seatID, err := seatParams(c)
	if err != nil {
		return err
	}
	var req model.SeatRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	seat, err := h.bookingSvc.UpdateSeat(c.Request().Context(), libraryID, seatID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage("seat updated", seat))
}

// PatchSeat godoc
// @Summary Partially update a seat
// @Tags seats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param seatId path string true "seat id"
// @Param input body model.SeatPatch true "request body"
// @Success 200 {object} model.Response{data=model.Seat}
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries/{libraryId}/seats/{seatId} [patch]
func (h *Handler) PatchSeat(c echo.Context) error {
	libraryID, seatID, err := seatParams(c)
	if err != nil {
		return err
	}
	var patch model.SeatPatch
	if err := bindValid(c, &patch); err != nil {
		return err
	}
	seat, err := h.bookingSvc.PatchSeat(c.Request().Context(), libraryID, seatID, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.OKMessage("seat updated", seat))
}

// DeleteSeat godoc
// @Summary Delete a seat
// @Tags seats
// @Produce json
// @Security BearerAuth
// @Param libraryId path string true "library id"
// @Param seatId path string true "seat id"
// @Success 204
// @Failure 400 {object} model.Response
// @Failure 401 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /libraries/{libraryId}/seats/{seatId} [delete]
func (h *Handler) DeleteSeat(c echo.Context) error {
	libraryID, seatID, err := seatParams(c)
	if err != nil {
		return err
	}
	if err := h.bookingSvc.DeleteSeat(c.Request().Context(), libraryID, seatID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func seatParams(c echo.Context) (libraryID, seatID string, err error) {
	if libraryID, err = idParam(c, "libraryId", "library"); err != nil {
		return "", "", err
	}
	if seatID, err = idParam(c, "seatId", "seat"); err != nil {
		return "", "", err
	}
	return libraryID, seatID, nil
}
