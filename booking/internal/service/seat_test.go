package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

func TestService_CreateSeat(t *testing.T) {
	t.Parallel()
	const otherLibrary = "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d06"
	req := model.SeatRequest{Code: "A101", Floor: "1", Area: "Quiet"}

	svc, repo := newService(t)
	repo.EXPECT().GetLibrary(gomock.Any(), gomock.Any()).Return(model.Library{}, nil).Times(3)
	gomock.InOrder(
		repo.EXPECT().CreateSeat(gomock.Any(), req.Seat(libraryID)).Return(model.Seat{ID: seatID, Code: "A101", LibraryID: libraryID, Status: model.SeatAvailable}, nil),
		repo.EXPECT().CreateSeat(gomock.Any(), req.Seat(libraryID)).Return(model.Seat{}, errs.Conflict("seat with this code already exists in this library")),
		repo.EXPECT().CreateSeat(gomock.Any(), req.Seat(otherLibrary)).Return(model.Seat{ID: "s2", Code: "A101", LibraryID: otherLibrary}, nil),
	)

	seat, err := svc.CreateSeat(context.Background(), libraryID, req)
	require.NoError(t, err)
	require.Equal(t, model.SeatAvailable, seat.Status)

	_, err = svc.CreateSeat(context.Background(), libraryID, req)
	require.True(t, errs.IsConflict(err))

	seat, err = svc.CreateSeat(context.Background(), otherLibrary, req)
	require.NoError(t, err)
	require.Equal(t, otherLibrary, seat.LibraryID)
}

func TestService_GetSeat_OtherLibrary(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(model.Seat{ID: seatID, LibraryID: "another"}, nil)

	_, err := svc.GetSeat(context.Background(), libraryID, seatID)
	require.True(t, errs.IsNotFound(err))
}

func TestService_DeleteSeat(t *testing.T) {
	t.Parallel()
	seat := model.Seat{ID: seatID, LibraryID: libraryID}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(seat, nil)
		repo.EXPECT().ActiveReservations(gomock.Any(), seatID).Return(nil, nil)
		repo.EXPECT().DeleteSeat(gomock.Any(), seatID).Return(nil)

		require.NoError(t, svc.DeleteSeat(context.Background(), libraryID, seatID))
	})

	t.Run("err. active reservations", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(seat, nil)
		repo.EXPECT().ActiveReservations(gomock.Any(), seatID).Return([]model.Reservation{{ID: rsvID}}, nil)

		err := svc.DeleteSeat(context.Background(), libraryID, seatID)
		require.True(t, errs.IsConflict(err))
	})
}

func TestService_PatchSeat(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	seat := model.Seat{ID: seatID, LibraryID: libraryID, Code: "A101", Floor: "1", Area: "Quiet", Status: model.SeatAvailable}
	status := model.SeatOutOfService
	repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(seat, nil)
	want := seat
	want.Status = status
	repo.EXPECT().UpdateSeat(gomock.Any(), want).Return(want, nil)

	out, err := svc.PatchSeat(context.Background(), libraryID, seatID, model.SeatPatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.SeatOutOfService, out.Status)
}
