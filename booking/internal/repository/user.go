package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

var userColumns = []string{"id", "email", "password", "name", "role", "created_at", "updated_at"}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("email", "password", "name", "role").
		Values(strings.ToLower(u.Email), u.Password, u.Name, u.Role).
		Suffix(returning(userColumns...)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	user, err := collectOne[model.User](ctx, r.db, query, args)
	return user, r.translate(err, "CreateUser", "user")
}

func (r *repository) GetUser(ctx context.Context, id string) (model.User, error) {
	return r.getUser(ctx, "GetUser", sq.Eq{"id": id})
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, "GetUserByEmail", sq.Eq{"email": strings.ToLower(email)})
}

func (r *repository) getUser(ctx context.Context, op string, where sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	user, err := collectOne[model.User](ctx, r.db, query, args)
	return user, r.translate(err, op, "user")
}

func (r *repository) UpdateUserName(ctx context.Context, id, name string) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns...)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	user, err := collectOne[model.User](ctx, r.db, query, args)
	return user, r.translate(err, "UpdateUserName", "user")
}

func (r *repository) SetUserRole(ctx context.Context, id string, role auth.Role) error {
	query, args, err := qb.Update(usersTableName).
		Set("role", role).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, "SetUserRole", "user", query, args)
}
