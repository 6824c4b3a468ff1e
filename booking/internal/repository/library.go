package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
)

const librariansColumn = `coalesce((select array_agg(ll.user_id::text order by ll.user_id) from library_librarians ll where ll.library_id = libraries.id), '{}') as librarians`

var libraryColumns = []string{
	"id", "name", "code", "address", "contact_phone", "contact_email",
	"total_seats", "is_active", librariansColumn, "created_at", "updated_at",
}

func (r *repository) CreateLibrary(ctx context.Context, l model.Library) (model.Library, error) {
	query, args, err := qb.Insert(librariesTableName).
		Columns("name", "code", "address", "contact_phone", "contact_email", "total_seats", "is_active").
		Values(l.Name, l.Code, l.Address, l.ContactPhone, l.ContactEmail, l.TotalSeats, l.IsActive).
		Suffix(returning(libraryColumns...)).
		ToSql()
	if err != nil {
		return model.Library{}, err
	}
	lib, err := collectOne[model.Library](ctx, r.db, query, args)
	return lib, r.translate(err, "CreateLibrary", "library")
}

func (r *repository) GetLibrary(ctx context.Context, id string) (model.Library, error) {
	return r.getLibrary(ctx, "GetLibrary", sq.Eq{"id": id})
}

func (r *repository) GetLibraryByCode(ctx context.Context, code string) (model.Library, error) {
	return r.getLibrary(ctx, "GetLibraryByCode", sq.Eq{"code": model.NormalizeCode(code)})
}

func (r *repository) getLibrary(ctx context.Context, op string, where sq.Eq) (model.Library, error) {
	query, args, err := qb.Select(libraryColumns...).
		From(librariesTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Library{}, err
	}
	lib, err := collectOne[model.Library](ctx, r.db, query, args)
	return lib, r.translate(err, op, "library")
}

func (r *repository) ListLibraries(ctx context.Context, f model.LibraryFilter) ([]model.Library, error) {
	q := qb.Select(libraryColumns...).
		From(librariesTableName).
		OrderBy("name")
	if !f.IncludeInactive {
		q = q.Where(sq.Eq{"is_active": true})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	libs, err := collectRows[model.Library](ctx, r.db, query, args)
	return libs, r.translate(err, "ListLibraries", "library")
}

func (r *repository) UpdateLibrary(ctx context.Context, l model.Library) (model.Library, error) {
	query, args, err := qb.Update(librariesTableName).
		SetMap(map[string]any{
			"name":          l.Name,
			"code":          l.Code,
			"address":       l.Address,
			"contact_phone": l.ContactPhone,
			"contact_email": l.ContactEmail,
			"total_seats":   l.TotalSeats,
			"is_active":     l.IsActive,
			"updated_at":    sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": l.ID}).
		Suffix(returning(libraryColumns...)).
		ToSql()
	if err != nil {
		return model.Library{}, err
	}
	lib, err := collectOne[model.Library](ctx, r.db, query, args)
	return lib, r.translate(err, "UpdateLibrary", "library")
}

func (r *repository) DeleteLibrary(ctx context.Context, id string) error {
	query, args, err := qb.Delete(librariesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, "DeleteLibrary", "library", query, args)
}

func (r *repository) AddLibrarian(ctx context.Context, libraryID, userID string) error {
	query, args, err := qb.Insert(librariansTableName).
		Columns("library_id", "user_id").
		Values(libraryID, userID).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return r.translate(err, "AddLibrarian", "library")
}

func (r *repository) RemoveLibrarian(ctx context.Context, libraryID, userID string) error {
	query, args, err := qb.Delete(librariansTableName).
		Where(sq.Eq{"library_id": libraryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, "RemoveLibrarian", "librarian", query, args)
}
