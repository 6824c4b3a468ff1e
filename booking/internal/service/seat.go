package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

func (s *Service) CreateSeat(ctx context.Context, libraryID string, req model.SeatRequest) (model.Seat, error) {
	if _, err := s.repo.GetLibrary(ctx, libraryID); err != nil {
		return model.Seat{}, errors.Wrap(err, "GetLibrary")
	}
	seat, err := s.repo.CreateSeat(ctx, req.Seat(libraryID))
	if err != nil {
		return model.Seat{}, errors.Wrap(err, "CreateSeat")
	}
	return seat, nil
}

// GetSeat returns the seat only when it belongs to the library.
func (s *Service) GetSeat(ctx context.Context, libraryID, seatID string) (model.Seat, error) {
	seat, err := s.repo.GetSeat(ctx, seatID)
	if err != nil {
		return model.Seat{}, errors.Wrap(err, "GetSeat")
	}
	if seat.LibraryID != libraryID {
		return model.Seat{}, errs.NotFound("seat")
	}
	return seat, nil
}

func (s *Service) ListSeats(ctx context.Context, f model.SeatFilter) ([]model.Seat, error) {
	if _, err := s.repo.GetLibrary(ctx, f.LibraryID); err != nil {
		return nil, errors.Wrap(err, "GetLibrary")
	}
	seats, err := s.repo.ListSeats(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "ListSeats")
	}
	return seats, nil
}

func (s *Service) UpdateSeat(ctx context.Context, libraryID, seatID string, req model.SeatRequest) (model.Seat, error) {
	seat, err := s.GetSeat(ctx, libraryID, seatID)
	if err != nil {
		return model.Seat{}, err
	}
	next := req.Seat(libraryID)
	next.ID = seat.ID
	seat, err = s.repo.UpdateSeat(ctx, next)
	if err != nil {
		return model.Seat{}, errors.Wrap(err, "UpdateSeat")
	}
	return seat, nil
}

func (s *Service) PatchSeat(ctx context.Context, libraryID, seatID string, patch model.SeatPatch) (model.Seat, error) {
	seat, err := s.GetSeat(ctx, libraryID, seatID)
	if err != nil {
		return model.Seat{}, err
	}
	patch.Apply(&seat)
	seat, err = s.repo.UpdateSeat(ctx, seat)
	if err != nil {
		return model.Seat{}, errors.Wrap(err, "UpdateSeat")
	}
	return seat, nil
}

func (s *Service) DeleteSeat(ctx context.Context, libraryID, seatID string) error {
	if _, err := s.GetSeat(ctx, libraryID, seatID); err != nil {
		return err
	}
	active, err := s.repo.ActiveReservations(ctx, seatID)
	if err != nil {
		return errors.Wrap(err, "ActiveReservations")
	}
	if len(active) > 0 {
		return errs.Conflict("seat has active reservations")
	}
	if err := s.repo.DeleteSeat(ctx, seatID); err != nil {
		return errors.Wrap(err, "DeleteSeat")
	}
	return nil
}
