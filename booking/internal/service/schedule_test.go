package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

func TestService_GetSchedule(t *testing.T) {
	t.Parallel()
	hours := model.OperatingHours{Open: "08:30", Close: "20:00"}
	week := model.WeeklySchedule{Monday: hours, Tuesday: hours, Wednesday: hours, Thursday: hours, Friday: hours}

	t.Run("ok. open now", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetLibrary(gomock.Any(), libraryID).Return(model.Library{ID: libraryID}, nil)
		repo.EXPECT().GetSchedule(gomock.Any(), libraryID).Return(model.Schedule{LibraryID: libraryID, Week: week}, nil)

		view, err := svc.GetSchedule(context.Background(), libraryID)
		require.NoError(t, err)
		require.True(t, view.IsOpen)
	})

	t.Run("err. no schedule", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetLibrary(gomock.Any(), libraryID).Return(model.Library{ID: libraryID}, nil)
		repo.EXPECT().GetSchedule(gomock.Any(), libraryID).Return(model.Schedule{}, errs.NotFound("schedule"))

		_, err := svc.GetSchedule(context.Background(), libraryID)
		require.True(t, errs.IsNotFound(err))
	})

	t.Run("err. duplicate", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetLibrary(gomock.Any(), libraryID).Return(model.Library{ID: libraryID}, nil)
		repo.EXPECT().CreateSchedule(gomock.Any(), model.Schedule{LibraryID: libraryID, Week: week}).
			Return(model.Schedule{}, errs.Conflict("schedule already exists for this library"))

		_, err := svc.CreateSchedule(context.Background(), libraryID, week)
		require.True(t, errs.IsConflict(err))
	})
}
