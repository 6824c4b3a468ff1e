package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

var reservationColumns = []string{"id", "user_id", "seat_id", "start_time", "end_time", "status", "created_at", "updated_at"}

func prefixed(prefix string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + "." + c
	}
	return out
}

func (r *repository) CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	query, args, err := qb.Insert(reservationsTableName).
		Columns("user_id", "seat_id", "start_time", "end_time", "status").
		Values(rsv.UserID, rsv.SeatID, rsv.StartTime, rsv.EndTime, model.ReservationActive).
		Suffix(returning(reservationColumns...)).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	out, err := collectOne[model.Reservation](ctx, r.db, query, args)
	return out, r.translate(err, "CreateReservation", "reservation")
}

func (r *repository) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	out, err := collectOne[model.Reservation](ctx, r.db, query, args)
	return out, r.translate(err, "GetReservation", "reservation")
}

func (r *repository) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error) {
	query, args, err := listReservationsQuery(f).ToSql()
	if err != nil {
		return nil, err
	}
	out, err := collectRows[model.Reservation](ctx, r.db, query, args)
	return out, r.translate(err, "ListReservations", "reservation")
}

// listReservationsQuery selects reservations matching f; the date range applies only when
// both ends are set and keeps reservations contained in it.
func listReservationsQuery(f model.ReservationFilter) sq.SelectBuilder {
	f = f.Normalize()
	q := qb.Select(prefixed("r", reservationColumns)...).
		From(reservationsTableName + " r").
		OrderBy("r.start_time")
	if f.LibraryID != "" {
		q = q.Join(seatsTableName + " s on s.id = r.seat_id").
			Where(sq.Eq{"s.library_id": f.LibraryID})
	}
	if f.UserID != "" {
		q = q.Where(sq.Eq{"r.user_id": f.UserID})
	}
	if f.SeatID != "" {
		q = q.Where(sq.Eq{"r.seat_id": f.SeatID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"r.status": f.Status})
	}
	if f.StartDate != nil && f.EndDate != nil {
		q = q.Where(sq.GtOrEq{"r.start_time": *f.StartDate}).
			Where(sq.LtOrEq{"r.end_time": *f.EndDate})
	}
	return q
}

func (r *repository) ActiveReservations(ctx context.Context, seatID string) ([]model.Reservation, error) {
	return r.ListReservations(ctx, model.ReservationFilter{SeatID: seatID, Status: model.ReservationActive})
}

func (r *repository) SetReservationStatus(ctx context.Context, id string, status model.ReservationStatus) (model.Reservation, error) {
	query, args, err := qb.Update(reservationsTableName).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(reservationColumns...)).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	out, err := collectOne[model.Reservation](ctx, r.db, query, args)
	return out, r.translate(err, "SetReservationStatus", "reservation")
}

func (r *repository) CompleteExpired(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	q := `
update reservations
    set status = @completed, updated_at = now()
where status = @active and end_time <= @now
` + returning(reservationColumns...)
	args := pgx.NamedArgs{
		"completed": model.ReservationCompleted,
		"active":    model.ReservationActive,
		"now":       now,
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, r.translate(err, "CompleteExpired", "reservation")
	}
	defer rows.Close()
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reservation])
	return out, r.translate(err, "CompleteExpired", "reservation")
}
