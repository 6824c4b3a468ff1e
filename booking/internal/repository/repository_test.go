package repository

import (
	"io/fs"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/booking/migrations"
)

func TestRepository_translate(t *testing.T) {
	t.Parallel()
	r := &repository{log: zap.NewExample().Named("test")}

	tests := []struct {
		name    string
		err     error
		entity  string
		wantErr error
	}{
		{
			name:    "no rows",
			err:     pgx.ErrNoRows,
			entity:  "seat",
			wantErr: errs.NotFound("seat"),
		},
		{
			name:    "overlap exclusion",
			err:     &pgconn.PgError{Code: pgerrcode.ExclusionViolation, ConstraintName: "reservations_no_overlap"},
			entity:  "reservation",
			wantErr: errs.Conflict("seat is already reserved for this time slot"),
		},
		{
			name:    "duplicate seat code",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "seats_library_code_key"},
			entity:  "seat",
			wantErr: errs.Conflict("seat with this code already exists in this library"),
		},
		{
			name:    "unknown unique",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "whatever"},
			entity:  "library",
			wantErr: errs.Conflict("library already exists"),
		},
		{
			name:    "missing seat fk",
			err:     &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "reservations_seat_fkey"},
			entity:  "reservation",
			wantErr: errs.NotFound("seat"),
		},
		{
			name:    "malformed uuid",
			err:     &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			entity:  "library",
			wantErr: errs.NotFound("library"),
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "reservations_time_check"},
			entity:  "reservation",
			wantErr: errs.Validation("invalid reservation"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantErr, r.translate(errors.Wrap(tt.err, "query"), "op", tt.entity))
		})
	}

	t.Run("nil", func(t *testing.T) {
		require.NoError(t, r.translate(nil, "op", "seat"))
	})
	t.Run("unknown is wrapped", func(t *testing.T) {
		cause := errors.New("conn reset")
		err := r.translate(cause, "GetSeat", "seat")
		require.ErrorIs(t, err, cause)
		require.False(t, errs.IsNotFound(err))
	})
}

func TestRepository_columnHelpers(t *testing.T) {
	t.Parallel()
	cols := prefixed("r", reservationColumns)
	require.Equal(t, "r.id", cols[0])
	require.Len(t, cols, len(reservationColumns))
	require.Equal(t, "returning id, user_id", returning("id", "user_id"))
}

func TestRepository_listReservationsQuery(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   model.ReservationFilter
		contains []string
		absent   []string
		args     []any
	}{
		{
			name: "library with status and range",
			filter: model.ReservationFilter{
				LibraryID: "lib-1",
				Status:    model.ReservationActive,
				StartDate: &start,
				EndDate:   &end,
			},
			contains: []string{
				"FROM reservations r JOIN seats s on s.id = r.seat_id",
				"s.library_id = $1",
				"r.status = $2",
				"r.start_time >= $3",
				"r.end_time <= $4",
				"ORDER BY r.start_time",
			},
			args: []any{"lib-1", model.ReservationActive, start, end},
		},
		{
			name:     "user only",
			filter:   model.ReservationFilter{UserID: "user-1"},
			contains: []string{"r.user_id = $1"},
			absent:   []string{"JOIN", "start_time >=", "end_time <="},
			args:     []any{"user-1"},
		},
		{
			name:     "half range is ignored",
			filter:   model.ReservationFilter{SeatID: "seat-1", StartDate: &start},
			contains: []string{"r.seat_id = $1"},
			absent:   []string{"start_time >=", "end_time <="},
			args:     []any{"seat-1"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			query, args, err := listReservationsQuery(tt.filter).ToSql()
			require.NoError(t, err)
			for _, part := range tt.contains {
				require.Contains(t, query, part)
			}
			for _, part := range tt.absent {
				require.NotContains(t, query, part)
			}
			require.Equal(t, tt.args, args)
		})
	}
}

// Every constraint the translator knows about must exist in the schema,
// otherwise its violation falls back to a generic message.
func TestRepository_constraintsInSchema(t *testing.T) {
	t.Parallel()
	raw, err := fs.ReadFile(migrations.MigrationFiles, "00001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	for name := range conflictMessages {
		require.Contains(t, schema, "constraint "+name+" ", name)
	}
	for name := range foreignKeyEntities {
		require.Contains(t, schema, "constraint "+name+" foreign key", name)
	}
	require.Contains(t, schema, "constraint reservations_no_overlap exclude using gist")
	require.Contains(t, schema, "tstzrange(start_time, end_time, '[)') with &&")
	require.Contains(t, schema, "where (status = 'ACTIVE')")
}
