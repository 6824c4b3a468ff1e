package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

var scheduleColumns = []string{"id", "library_id", "schedule", "created_at", "updated_at"}

func (r *repository) CreateSchedule(ctx context.Context, s model.Schedule) (model.Schedule, error) {
	query, args, err := qb.Insert(schedulesTableName).
		Columns("library_id", "schedule").
		Values(s.LibraryID, s.Week).
		Suffix(returning(scheduleColumns...)).
		ToSql()
	if err != nil {
		return model.Schedule{}, err
	}
	sch, err := collectOne[model.Schedule](ctx, r.db, query, args)
	return sch, r.translate(err, "CreateSchedule", "schedule")
}

func (r *repository) GetSchedule(ctx context.Context, libraryID string) (model.Schedule, error) {
	query, args, err := qb.Select(scheduleColumns...).
		From(schedulesTableName).
		Where(sq.Eq{"library_id": libraryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Schedule{}, err
	}
	sch, err := collectOne[model.Schedule](ctx, r.db, query, args)
	return sch, r.translate(err, "GetSchedule", "schedule")
}

func (r *repository) UpdateSchedule(ctx context.Context, libraryID string, week model.WeeklySchedule) (model.Schedule, error) {
	query, args, err := qb.Update(schedulesTableName).
		Set("schedule", week).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"library_id": libraryID}).
		Suffix(returning(scheduleColumns...)).
		ToSql()
	if err != nil {
		return model.Schedule{}, err
	}
	sch, err := collectOne[model.Schedule](ctx, r.db, query, args)
	return sch, r.translate(err, "UpdateSchedule", "schedule")
}

func (r *repository) DeleteSchedule(ctx context.Context, libraryID string) error {
	query, args, err := qb.Delete(schedulesTableName).
		Where(sq.Eq{"library_id": libraryID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, "DeleteSchedule", "schedule", query, args)
}
