package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/booking/internal/repository"
	"github.com/Astemirdum/seat-booking/pkg/auth"
	"github.com/Astemirdum/seat-booking/pkg/kafka"
	"github.com/Astemirdum/seat-booking/pkg/lock"
	"github.com/Astemirdum/seat-booking/pkg/metrics"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	tokens *auth.Issuer
	locker lock.Locker
	events kafka.Publisher
	now    func() time.Time
}

type Option func(*Service)

func WithIssuer(issuer *auth.Issuer) Option {
	return func(s *Service) {
		s.tokens = issuer
	}
}

func WithLocker(l lock.Locker) Option {
	return func(s *Service) {
		s.locker = l
	}
}

func WithPublisher(p kafka.Publisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		locker: lock.NewKeyed(),
		events: kafka.Nop{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish is best-effort: a failed event never fails the request.
func (s *Service) publish(ctx context.Context, key string, ev model.Event) {
	ev.OccurredAt = s.now().UTC()
	if err := s.events.Publish(context.WithoutCancel(ctx), key, ev); err != nil {
		metrics.EventsDropped.Inc()
		s.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
