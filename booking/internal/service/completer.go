package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/metrics"
)

// CompleteExpired moves ACTIVE reservations that already ended to COMPLETED.
func (s *Service) CompleteExpired(ctx context.Context) (int, error) {
	done, err := s.repo.CompleteExpired(ctx, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "CompleteExpired")
	}
	metrics.ReservationsCompleted.Add(float64(len(done)))
	for i := range done {
		s.publish(ctx, done[i].SeatID, model.Event{
			Type:        model.EventReservationCompleted,
			UserID:      done[i].UserID,
			Reservation: &done[i],
		})
	}
	return len(done), nil
}

// RunCompleter calls CompleteExpired every interval until ctx is done.
func (s *Service) RunCompleter(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	log := s.log.Named("completer")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := s.CompleteExpired(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Error("complete expired", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("reservations completed", zap.Int("count", n))
			}
		}
	}
}
