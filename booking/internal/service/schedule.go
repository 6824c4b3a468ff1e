package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

func (s *Service) GetSchedule(ctx context.Context, libraryID string) (model.ScheduleView, error) {
	if _, err := s.repo.GetLibrary(ctx, libraryID); err != nil {
		return model.ScheduleView{}, errors.Wrap(err, "GetLibrary")
	}
	sch, err := s.repo.GetSchedule(ctx, libraryID)
	if err != nil {
		return model.ScheduleView{}, errors.Wrap(err, "GetSchedule")
	}
	return model.ScheduleView{Schedule: sch, IsOpen: sch.IsOpenAt(s.now())}, nil
}

func (s *Service) CreateSchedule(ctx context.Context, libraryID string, week model.WeeklySchedule) (model.Schedule, error) {
	if _, err := s.repo.GetLibrary(ctx, libraryID); err != nil {
		return model.Schedule{}, errors.Wrap(err, "GetLibrary")
	}
	sch, err := s.repo.CreateSchedule(ctx, model.Schedule{LibraryID: libraryID, Week: week})
	if err != nil {
		return model.Schedule{}, errors.Wrap(err, "CreateSchedule")
	}
	return sch, nil
}

func (s *Service) UpdateSchedule(ctx context.Context, libraryID string, week model.WeeklySchedule) (model.Schedule, error) {
	sch, err := s.repo.UpdateSchedule(ctx, libraryID, week)
	if err != nil {
		return model.Schedule{}, errors.Wrap(err, "UpdateSchedule")
	}
	return sch, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, libraryID string) error {
	if err := s.repo.DeleteSchedule(ctx, libraryID); err != nil {
		return errors.Wrap(err, "DeleteSchedule")
	}
	return nil
}
