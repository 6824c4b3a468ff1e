package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUserName(ctx context.Context, id, name string) (model.User, error)
	SetUserRole(ctx context.Context, id string, role auth.Role) error

	CreateLibrary(ctx context.Context, l model.Library) (model.Library, error)
	GetLibrary(ctx context.Context, id string) (model.Library, error)
	GetLibraryByCode(ctx context.Context, code string) (model.Library, error)
	ListLibraries(ctx context.Context, f model.LibraryFilter) ([]model.Library, error)
	UpdateLibrary(ctx context.Context, l model.Library) (model.Library, error)
	DeleteLibrary(ctx context.Context, id string) error
	AddLibrarian(ctx context.Context, libraryID, userID string) error
	RemoveLibrarian(ctx context.Context, libraryID, userID string) error

	CreateSeat(ctx context.Context, s model.Seat) (model.Seat, error)
	GetSeat(ctx context.Context, id string) (model.Seat, error)
	ListSeats(ctx context.Context, f model.SeatFilter) ([]model.Seat, error)
	UpdateSeat(ctx context.Context, s model.Seat) (model.Seat, error)
	DeleteSeat(ctx context.Context, id string) error

	CreateSchedule(ctx context.Context, s model.Schedule) (model.Schedule, error)
	GetSchedule(ctx context.Context, libraryID string) (model.Schedule, error)
	UpdateSchedule(ctx context.Context, libraryID string, week model.WeeklySchedule) (model.Schedule, error)
	DeleteSchedule(ctx context.Context, libraryID string) error

	CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, id string) (model.Reservation, error)
	ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error)
	ActiveReservations(ctx context.Context, seatID string) ([]model.Reservation, error)
	SetReservationStatus(ctx context.Context, id string, status model.ReservationStatus) (model.Reservation, error)
	CompleteExpired(ctx context.Context, now time.Time) ([]model.Reservation, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	librariesTableName    = `libraries`
	librariansTableName   = `library_librarians`
	seatsTableName        = `seats`
	schedulesTableName    = `schedules`
	reservationsTableName = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returning(cols ...string) string {
	return "returning " + strings.Join(cols, ", ")
}

func collectOne[T any](ctx context.Context, db *pgxpool.Pool, query string, args []any) (T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	defer rows.Close()
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
}

func collectRows[T any](ctx context.Context, db *pgxpool.Pool, query string, args []any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err == nil && out == nil {
		out = []T{}
	}
	return out, err
}

var conflictMessages = map[string]string{
	"users_email_key":         "user with this email already exists",
	"libraries_code_key":      "library with this code already exists",
	"seats_library_code_key":  "seat with this code already exists in this library",
	"schedules_library_key":   "schedule already exists for this library",
	"library_librarians_pkey": "user is already a librarian of this library",
	"reservations_no_overlap": "seat is already reserved for this time slot",
}

var foreignKeyEntities = map[string]string{
	"library_librarians_library_fkey": "library",
	"library_librarians_user_fkey":    "user",
	"seats_library_fkey":              "library",
	"schedules_library_fkey":          "library",
	"reservations_user_fkey":          "user",
	"reservations_seat_fkey":          "seat",
}

// translate maps storage failures onto the error taxonomy; anything else is logged and wrapped.
func (r *repository) translate(err error, op, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(entity)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.ExclusionViolation:
			if msg, ok := conflictMessages[pgErr.ConstraintName]; ok {
				return errs.Conflict(msg)
			}
			return errs.Conflict(entity + " already exists")
		case pgerrcode.ForeignKeyViolation:
			if fk, ok := foreignKeyEntities[pgErr.ConstraintName]; ok {
				return errs.NotFound(fk)
			}
			return errs.NotFound(entity)
		case pgerrcode.InvalidTextRepresentation:
			return errs.NotFound(entity)
		case pgerrcode.CheckViolation:
			return errs.Validation("invalid " + entity)
		}
	}
	r.log.Error(op, zap.Error(err))
	return errors.Wrap(err, op)
}

func (r *repository) execAffecting(ctx context.Context, op, entity, query string, args []any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return r.translate(err, op, entity)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(entity)
	}
	return nil
}
