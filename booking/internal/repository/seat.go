package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

var seatColumns = []string{"id", "code", "floor", "area", "status", "library_id", "created_at", "updated_at"}

func (r *repository) CreateSeat(ctx context.Context, s model.Seat) (model.Seat, error) {
	query, args, err := qb.Insert(seatsTableName).
		Columns("library_id", "code", "floor", "area", "status").
		Values(s.LibraryID, s.Code, s.Floor, s.Area, s.Status).
		Suffix(returning(seatColumns...)).
		ToSql()
	if err != nil {
		return model.Seat{}, err
	}
	seat, err := collectOne[model.Seat](ctx, r.db, query, args)
	return seat, r.translate(err, "CreateSeat", "seat")
}

func (r *repository) GetSeat(ctx context.Context, id string) (model.Seat, error) {
	query, args, err := qb.Select(seatColumns...).
		From(seatsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Seat{}, err
	}
	seat, err := collectOne[model.Seat](ctx, r.db, query, args)
	return seat, r.translate(err, "GetSeat", "seat")
}

func (r *repository) ListSeats(ctx context.Context, f model.SeatFilter) ([]model.Seat, error) {
	q := qb.Select(seatColumns...).
		From(seatsTableName).
		Where(sq.Eq{"library_id": f.LibraryID}).
		OrderBy("code")
	if f.Floor != "" {
		q = q.Where(sq.Eq{"floor": f.Floor})
	}
	if f.Area != "" {
		q = q.Where(sq.Eq{"area": f.Area})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	seats, err := collectRows[model.Seat](ctx, r.db, query, args)
	return seats, r.translate(err, "ListSeats", "seat")
}

func (r *repository) UpdateSeat(ctx context.Context, s model.Seat) (model.Seat, error) {
	query, args, err := qb.Update(seatsTableName).
		SetMap(map[string]any{
			"code":       s.Code,
			"floor":      s.Floor,
			"area":       s.Area,
			"status":     s.Status,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": s.ID}).
		Suffix(returning(seatColumns...)).
		ToSql()
	if err != nil {
		return model.Seat{}, err
	}
	seat, err := collectOne[model.Seat](ctx, r.db, query, args)
	return seat, r.translate(err, "UpdateSeat", "seat")
}

func (r *repository) DeleteSeat(ctx context.Context, id string) error {
	query, args, err := qb.Delete(seatsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, "DeleteSeat", "seat", query, args)
}
