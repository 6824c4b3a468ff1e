package handler

import (
	"context"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/booking/internal/service"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Profile(ctx context.Context, userID string) (model.User, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.User, error)
	AssignLibrarian(ctx context.Context, userID, libraryID string) (model.User, error)
	RevokeLibrarian(ctx context.Context, userID, libraryID string) (model.User, error)

	AuthorizeLibrary(ctx context.Context, p auth.Principal, libraryID string) error
	AuthorizeSeat(ctx context.Context, p auth.Principal, seatID string) error

	CreateLibrary(ctx context.Context, req model.LibraryRequest) (model.Library, error)
	GetLibrary(ctx context.Context, id string) (model.Library, error)
	GetLibraryByCode(ctx context.Context, code string) (model.Library, error)
	ListLibraries(ctx context.Context, f model.LibraryFilter) ([]model.Library, error)
	UpdateLibrary(ctx context.Context, id string, patch model.LibraryPatch) (model.Library, error)
	SetLibraryStatus(ctx context.Context, id string, active bool) (model.Library, error)
	DeleteLibrary(ctx context.Context, id string) error

	CreateSeat(ctx context.Context, libraryID string, req model.SeatRequest) (model.Seat, error)
	GetSeat(ctx context.Context, libraryID, seatID string) (model.Seat, error)
	ListSeats(ctx context.Context, f model.SeatFilter) ([]model.Seat, error)
	UpdateSeat(ctx context.Context, libraryID, seatID string, req model.SeatRequest) (model.Seat, error)
	PatchSeat(ctx context.Context, libraryID, seatID string, patch model.SeatPatch) (model.Seat, error)
	DeleteSeat(ctx context.Context, libraryID, seatID string) error

	GetSchedule(ctx context.Context, libraryID string) (model.ScheduleView, error)
	CreateSchedule(ctx context.Context, libraryID string, week model.WeeklySchedule) (model.Schedule, error)
	UpdateSchedule(ctx context.Context, libraryID string, week model.WeeklySchedule) (model.Schedule, error)
	DeleteSchedule(ctx context.Context, libraryID string) error

	CreateReservation(ctx context.Context, userID string, req model.CreateReservationRequest) (model.Reservation, error)
	CancelReservation(ctx context.Context, userID, reservationID string) (model.Reservation, error)
	AdminCancelReservation(ctx context.Context, actorID, libraryID, reservationID string) (model.Reservation, error)
	ListUserReservations(ctx context.Context, userID string, f model.ReservationFilter) ([]model.Reservation, error)
	ListLibraryReservations(ctx context.Context, libraryID string, f model.ReservationFilter) ([]model.Reservation, error)
	ListSeatReservations(ctx context.Context, seatID string, f model.ReservationFilter) ([]model.Reservation, error)
}

var _ BookingService = (*service.Service)(nil)
