package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/metrics"
)

const (
	MsgSlotTaken     = "seat is already reserved for this time slot"
	msgEndAfterStart = "endTime must be after startTime"

	actorUser  = "user"
	actorStaff = "staff"
)

// checkOverlap rejects [start, end) when it intersects an ACTIVE reservation of the seat.
func (s *Service) checkOverlap(ctx context.Context, seatID string, start, end time.Time) error {
	active, err := s.repo.ActiveReservations(ctx, seatID)
	if err != nil {
		return errors.Wrap(err, "ActiveReservations")
	}
	for _, r := range active {
		if model.Overlaps(start, end, r.StartTime, r.EndTime) {
			return errs.Conflict(MsgSlotTaken)
		}
	}
	return nil
}

func (s *Service) CreateReservation(ctx context.Context, userID string, req model.CreateReservationRequest) (model.Reservation, error) {
	if !req.EndTime.After(req.StartTime) {
		return model.Reservation{}, errs.Validation(msgEndAfterStart, msgEndAfterStart)
	}

	unlock, err := s.locker.Lock(ctx, "seat:"+req.SeatID)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "lock seat")
	}
	defer unlock()

	seat, err := s.repo.GetSeat(ctx, req.SeatID)
	if err != nil {
		if errs.IsNotFound(err) {
			return model.Reservation{}, errs.Business("seat not found")
		}
		return model.Reservation{}, errors.Wrap(err, "GetSeat")
	}
	if seat.Status == model.SeatOutOfService {
		return model.Reservation{}, errs.Business("seat is out of service")
	}
	if err := s.checkOverlap(ctx, seat.ID, req.StartTime, req.EndTime); err != nil {
		if errs.IsConflict(err) {
			metrics.ReservationConflicts.Inc()
		}
		return model.Reservation{}, err
	}

	rsv, err := s.repo.CreateReservation(ctx, model.Reservation{
		UserID:    userID,
		SeatID:    seat.ID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    model.ReservationActive,
	})
	if err != nil {
		if errs.IsConflict(err) {
			metrics.ReservationConflicts.Inc()
		}
		return model.Reservation{}, errors.Wrap(err, "CreateReservation")
	}
	metrics.ReservationsCreated.Inc()

	s.publish(ctx, rsv.SeatID, model.Event{
		Type:        model.EventReservationCreated,
		ActorID:     userID,
		UserID:      userID,
		LibraryID:   seat.LibraryID,
		Reservation: &rsv,
	})
	return rsv, nil
}

// CancelReservation cancels the caller's own reservation. A reservation of another
// user is reported as missing. Cancelling a non-ACTIVE reservation is allowed.
func (s *Service) CancelReservation(ctx context.Context, userID, reservationID string) (model.Reservation, error) {
	rsv, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "GetReservation")
	}
	if rsv.UserID != userID {
		return model.Reservation{}, errs.NotFound("reservation")
	}
	return s.cancel(ctx, rsv, userID, actorUser)
}

// AdminCancelReservation cancels any reservation held on a seat of the library.
func (s *Service) AdminCancelReservation(ctx context.Context, actorID, libraryID, reservationID string) (model.Reservation, error) {
	rsv, err := s.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "GetReservation")
	}
	seat, err := s.repo.GetSeat(ctx, rsv.SeatID)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "GetSeat")
	}
	if seat.LibraryID != libraryID {
		return model.Reservation{}, errs.NotFound("reservation")
	}
	return s.cancel(ctx, rsv, actorID, actorStaff)
}

func (s *Service) cancel(ctx context.Context, rsv model.Reservation, actorID, actor string) (model.Reservation, error) {
	out, err := s.repo.SetReservationStatus(ctx, rsv.ID, model.ReservationCancelled)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "SetReservationStatus")
	}
	metrics.ReservationsCancelled.WithLabelValues(actor).Inc()
	s.publish(ctx, out.SeatID, model.Event{
		Type:        model.EventReservationCancelled,
		ActorID:     actorID,
		UserID:      out.UserID,
		Reservation: &out,
	})
	return out, nil
}

func (s *Service) ListUserReservations(ctx context.Context, userID string, f model.ReservationFilter) ([]model.Reservation, error) {
	f.UserID = userID
	return s.listReservations(ctx, f)
}

func (s *Service) ListLibraryReservations(ctx context.Context, libraryID string, f model.ReservationFilter) ([]model.Reservation, error) {
	if _, err := s.repo.GetLibrary(ctx, libraryID); err != nil {
		return nil, errors.Wrap(err, "GetLibrary")
	}
	f.LibraryID = libraryID
	return s.listReservations(ctx, f)
}

func (s *Service) ListSeatReservations(ctx context.Context, seatID string, f model.ReservationFilter) ([]model.Reservation, error) {
	if _, err := s.repo.GetSeat(ctx, seatID); err != nil {
		return nil, errors.Wrap(err, "GetSeat")
	}
	f.SeatID = seatID
	return s.listReservations(ctx, f)
}

func (s *Service) listReservations(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, errs.Validation("invalid status", "status must be one of [ACTIVE CANCELLED COMPLETED]")
	}
	out, err := s.repo.ListReservations(ctx, f.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "ListReservations")
	}
	return out, nil
}
