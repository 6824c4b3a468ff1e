package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	repo_mocks "github.com/Astemirdum/seat-booking/booking/internal/repository/mocks"
	"github.com/Astemirdum/seat-booking/booking/internal/service"
)

const (
	libraryID = "5d1c4a2e-7f41-4c59-9a57-bb0c4c1e7a01"
	seatID    = "0b6f9a0e-4c1a-4f7e-8c43-2a8e1f5d9c02"
	userID    = "9f3e2d1c-8b7a-4c6d-9e5f-1a2b3c4d5e03"
	otherID   = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c04"
	rsvID     = "7c8d9e0f-1a2b-4c3d-8e4f-5a6b7c8d9e05"
)

var day = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

func at(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

type events struct {
	mu   sync.Mutex
	list []model.Event
}

func (e *events) Publish(_ context.Context, _ string, v any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list = append(e.list, v.(model.Event))
	return nil
}

func (e *events) Close() error { return nil }

func (e *events) types() []model.EventType {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.EventType, 0, len(e.list))
	for _, ev := range e.list {
		out = append(out, ev.Type)
	}
	return out
}

func newService(t *testing.T, opts ...service.Option) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	opts = append([]service.Option{service.WithClock(func() time.Time { return at(9) })}, opts...)
	return service.NewService(repo, zap.NewNop(), opts...), repo
}

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	seat := model.Seat{ID: seatID, LibraryID: libraryID, Code: "A101", Status: model.SeatAvailable}
	existing := model.Reservation{ID: rsvID, UserID: otherID, SeatID: seatID, StartTime: at(10), EndTime: at(12), Status: model.ReservationActive}

	type mockBehavior func(r *repo_mocks.MockRepository, req model.CreateReservationRequest)

	tests := []struct {
		name         string
		req          model.CreateReservationRequest
		mockBehavior mockBehavior
		check        func(t *testing.T, rsv model.Reservation, err error)
	}{
		{
			name: "ok",
			req:  model.CreateReservationRequest{SeatID: seatID, StartTime: at(12), EndTime: at(13)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetSeat(gomock.Any(), seatID).Return(seat, nil)
				r.EXPECT().ActiveReservations(gomock.Any(), seatID).Return([]model.Reservation{existing}, nil)
				r.EXPECT().CreateReservation(gomock.Any(), model.Reservation{
					UserID: userID, SeatID: seatID, StartTime: req.StartTime, EndTime: req.EndTime, Status: model.ReservationActive,
				}).DoAndReturn(func(_ context.Context, rsv model.Reservation) (model.Reservation, error) {
					rsv.ID = "new"
					return rsv, nil
				})
			},
			check: func(t *testing.T, rsv model.Reservation, err error) {
				require.NoError(t, err)
				require.Equal(t, "new", rsv.ID)
				require.Equal(t, model.ReservationActive, rsv.Status)
			},
		},
		{
			name:         "err. end before start",
			req:          model.CreateReservationRequest{SeatID: seatID, StartTime: at(12), EndTime: at(11)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			check: func(t *testing.T, _ model.Reservation, err error) {
				var verr *errs.ValidationError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, "endTime must be after startTime", verr.Message)
			},
		},
		{
			name:         "err. empty interval",
			req:          model.CreateReservationRequest{SeatID: seatID, StartTime: at(12), EndTime: at(12)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			check: func(t *testing.T, _ model.Reservation, err error) {
				var verr *errs.ValidationError
				require.ErrorAs(t, err, &verr)
			},
		},
		{
			name: "err. seat not found",
			req:  model.CreateReservationRequest{SeatID: seatID, StartTime: at(10), EndTime: at(11)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetSeat(gomock.Any(), seatID).Return(model.Seat{}, errs.NotFound("seat"))
			},
			check: func(t *testing.T, _ model.Reservation, err error) {
				var berr *errs.BusinessError
				require.ErrorAs(t, err, &berr)
				require.Equal(t, "seat not found", berr.Message)
				require.False(t, errs.IsNotFound(err))
			},
		},
		{
			name: "err. out of service",
			req:  model.CreateReservationRequest{SeatID: seatID, StartTime: at(10), EndTime: at(11)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				broken := seat
				broken.Status = model.SeatOutOfService
				r.EXPECT().GetSeat(gomock.Any(), seatID).Return(broken, nil)
			},
			check: func(t *testing.T, _ model.Reservation, err error) {
				var berr *errs.BusinessError
				require.ErrorAs(t, err, &berr)
			},
		},
		{
			name: "err. overlap",
			req:  model.CreateReservationRequest{SeatID: seatID, StartTime: at(11), EndTime: at(13)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetSeat(gomock.Any(), seatID).Return(seat, nil)
				r.EXPECT().ActiveReservations(gomock.Any(), seatID).Return([]model.Reservation{existing}, nil)
			},
			check: func(t *testing.T, _ model.Reservation, err error) {
				require.True(t, errs.IsConflict(err))
				require.EqualError(t, err, service.MsgSlotTaken)
			},
		},
		{
			name: "err. storage constraint",
			req:  model.CreateReservationRequest{SeatID: seatID, StartTime: at(14), EndTime: at(15)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetSeat(gomock.Any(), seatID).Return(seat, nil)
				r.EXPECT().ActiveReservations(gomock.Any(), seatID).Return(nil, nil)
				r.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{}, errs.Conflict(service.MsgSlotTaken))
			},
			check: func(t *testing.T, _ model.Reservation, err error) {
				require.True(t, errs.IsConflict(err))
			},
		},
		{
			name: "err. internal",
			req:  model.CreateReservationRequest{SeatID: seatID, StartTime: at(14), EndTime: at(15)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetSeat(gomock.Any(), seatID).Return(model.Seat{}, errors.New("db internal"))
			},
			check: func(t *testing.T, _ model.Reservation, err error) {
				require.ErrorContains(t, err, "db internal")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo, tt.req)
			rsv, err := svc.CreateReservation(context.Background(), userID, tt.req)
			tt.check(t, rsv, err)
		})
	}
}

// memReservations backs the reservation calls of the mock with a slice.
func memReservations(repo *repo_mocks.MockRepository, seat model.Seat) *[]model.Reservation {
	var (
		mu     sync.Mutex
		stored []model.Reservation
	)
	repo.EXPECT().GetSeat(gomock.Any(), seat.ID).Return(seat, nil).AnyTimes()
	repo.EXPECT().ActiveReservations(gomock.Any(), seat.ID).DoAndReturn(
		func(context.Context, string) ([]model.Reservation, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []model.Reservation
			for _, r := range stored {
				if r.Status == model.ReservationActive {
					out = append(out, r)
				}
			}
			return out, nil
		}).AnyTimes()
	repo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r model.Reservation) (model.Reservation, error) {
			mu.Lock()
			defer mu.Unlock()
			stored = append(stored, r)
			return r, nil
		}).AnyTimes()
	return &stored
}

func TestService_BookingScenario(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	stored := memReservations(repo, model.Seat{ID: seatID, LibraryID: libraryID, Status: model.SeatAvailable})
	ctx := context.Background()

	_, err := svc.CreateReservation(ctx, userID, model.CreateReservationRequest{SeatID: seatID, StartTime: at(10), EndTime: at(12)})
	require.NoError(t, err)

	_, err = svc.CreateReservation(ctx, otherID, model.CreateReservationRequest{SeatID: seatID, StartTime: at(11), EndTime: at(13)})
	require.True(t, errs.IsConflict(err))

	_, err = svc.CreateReservation(ctx, otherID, model.CreateReservationRequest{SeatID: seatID, StartTime: at(12), EndTime: at(13)})
	require.NoError(t, err)
	require.Len(t, *stored, 2)
}

func TestService_CreateReservation_Concurrent(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	stored := memReservations(repo, model.Seat{ID: seatID, LibraryID: libraryID, Status: model.SeatAvailable})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		conflicts int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateReservation(context.Background(), userID,
				model.CreateReservationRequest{SeatID: seatID, StartTime: at(10), EndTime: at(12)})
			if errs.IsConflict(err) {
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, *stored, 1)
	require.Equal(t, 9, conflicts)
}

func TestService_CancelReservation(t *testing.T) {
	t.Parallel()
	own := model.Reservation{ID: rsvID, UserID: userID, SeatID: seatID, StartTime: at(10), EndTime: at(12), Status: model.ReservationActive}

	t.Run("ok. repeat cancel is allowed", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		cancelled := own
		cancelled.Status = model.ReservationCancelled
		gomock.InOrder(
			repo.EXPECT().GetReservation(gomock.Any(), rsvID).Return(own, nil),
			repo.EXPECT().SetReservationStatus(gomock.Any(), rsvID, model.ReservationCancelled).Return(cancelled, nil),
			repo.EXPECT().GetReservation(gomock.Any(), rsvID).Return(cancelled, nil),
			repo.EXPECT().SetReservationStatus(gomock.Any(), rsvID, model.ReservationCancelled).Return(cancelled, nil),
		)

		for i := 0; i < 2; i++ {
			rsv, err := svc.CancelReservation(context.Background(), userID, rsvID)
			require.NoError(t, err)
			require.Equal(t, model.ReservationCancelled, rsv.Status)
		}
	})

	t.Run("err. someone else's reservation", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetReservation(gomock.Any(), rsvID).Return(own, nil)

		rsv, err := svc.CancelReservation(context.Background(), otherID, rsvID)
		require.True(t, errs.IsNotFound(err))
		require.EqualError(t, err, "reservation not found")
		require.Empty(t, rsv)
	})

	t.Run("err. missing", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetReservation(gomock.Any(), rsvID).Return(model.Reservation{}, errs.NotFound("reservation"))

		_, err := svc.CancelReservation(context.Background(), userID, rsvID)
		require.True(t, errs.IsNotFound(err))
	})
}

func TestService_AdminCancelReservation(t *testing.T) {
	t.Parallel()
	rsv := model.Reservation{ID: rsvID, UserID: userID, SeatID: seatID, Status: model.ReservationActive}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		ev := &events{}
		svc, repo := newService(t, service.WithPublisher(ev))
		repo.EXPECT().GetReservation(gomock.Any(), rsvID).Return(rsv, nil)
		repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(model.Seat{ID: seatID, LibraryID: libraryID}, nil)
		cancelled := rsv
		cancelled.Status = model.ReservationCancelled
		repo.EXPECT().SetReservationStatus(gomock.Any(), rsvID, model.ReservationCancelled).Return(cancelled, nil)

		out, err := svc.AdminCancelReservation(context.Background(), otherID, libraryID, rsvID)
		require.NoError(t, err)
		require.Equal(t, model.ReservationCancelled, out.Status)
		require.Equal(t, []model.EventType{model.EventReservationCancelled}, ev.types())
	})

	t.Run("err. other library", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetReservation(gomock.Any(), rsvID).Return(rsv, nil)
		repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(model.Seat{ID: seatID, LibraryID: "another"}, nil)

		_, err := svc.AdminCancelReservation(context.Background(), otherID, libraryID, rsvID)
		require.True(t, errs.IsNotFound(err))
	})
}

func TestService_ListReservations(t *testing.T) {
	t.Parallel()
	from, to := at(8), at(20)

	t.Run("half range is dropped", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().ListReservations(gomock.Any(), model.ReservationFilter{UserID: userID, Status: model.ReservationActive}).
			Return([]model.Reservation{}, nil)

		_, err := svc.ListUserReservations(context.Background(), userID,
			model.ReservationFilter{Status: model.ReservationActive, StartDate: &from})
		require.NoError(t, err)
	})

	t.Run("library filter with range", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetLibrary(gomock.Any(), libraryID).Return(model.Library{ID: libraryID}, nil)
		repo.EXPECT().ListReservations(gomock.Any(), model.ReservationFilter{LibraryID: libraryID, StartDate: &from, EndDate: &to}).
			Return([]model.Reservation{{ID: rsvID}}, nil)

		out, err := svc.ListLibraryReservations(context.Background(), libraryID,
			model.ReservationFilter{StartDate: &from, EndDate: &to})
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("err. seat not found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetSeat(gomock.Any(), seatID).Return(model.Seat{}, errs.NotFound("seat"))

		_, err := svc.ListSeatReservations(context.Background(), seatID, model.ReservationFilter{})
		require.True(t, errs.IsNotFound(err))
	})

	t.Run("err. bad status", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.ListUserReservations(context.Background(), userID, model.ReservationFilter{Status: "DONE"})
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestService_CompleteExpired(t *testing.T) {
	t.Parallel()
	ev := &events{}
	svc, repo := newService(t, service.WithPublisher(ev))
	done := []model.Reservation{
		{ID: "r1", SeatID: seatID, Status: model.ReservationCompleted},
		{ID: "r2", SeatID: seatID, Status: model.ReservationCompleted},
	}
	repo.EXPECT().CompleteExpired(gomock.Any(), at(9)).Return(done, nil)

	n, err := svc.CompleteExpired(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []model.EventType{model.EventReservationCompleted, model.EventReservationCompleted}, ev.types())
}

func TestService_RunCompleter(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	repo.EXPECT().CompleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]model.Reservation, error) {
			cancel()
			return nil, nil
		}).MinTimes(1)

	require.NoError(t, svc.RunCompleter(ctx, time.Millisecond))
}
