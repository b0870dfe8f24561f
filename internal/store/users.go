package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/lucaflorio/go-blog-api/internal/model"
)

// Users is the account repository.
type Users struct {
	db *bun.DB
}

func (r *Users) GetByID(ctx context.Context, id string) (*model.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, notFoundErr("user")
	}

	user := new(model.User)
	err = r.db.NewSelect().Model(user).Where("usr.id = ?", uid).Scan(ctx)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFoundErr("user")
	}
	if err != nil {
		return nil, wrapStoreErr(err, "could not load user")
	}
	return user, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := new(model.User)
	err := r.db.NewSelect().Model(user).Where("usr.email = ?", email).Scan(ctx)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFoundErr("user")
	}
	if err != nil {
		return nil, wrapStoreErr(err, "could not load user")
	}
	return user, nil
}

func (r *Users) Create(ctx context.Context, user *model.User) error {
	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return wrapStoreErr(err, "could not create user")
	}
	return nil
}

// Update persists the mutable profile fields and bumps updated_at.
func (r *Users) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().Model(user).
		Column("username", "email", "password_hash", "profile_picture", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return wrapStoreErr(err, "could not update user")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFoundErr("user")
	}
	return nil
}

func (r *Users) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return notFoundErr("user")
	}
	if _, err := r.db.NewDelete().Model((*model.User)(nil)).Where("id = ?", uid).Exec(ctx); err != nil {
		return wrapStoreErr(err, "could not delete user")
	}
	return nil
}

// List returns a page of users ordered by creation time.
func (r *Users) List(ctx context.Context, offset, limit int, ascending bool) ([]*model.User, error) {
	var users []*model.User
	q := r.db.NewSelect().Model(&users).
		Order("created_at " + direction(ascending)).
		Offset(offset).
		Limit(limit)
	if err := q.Scan(ctx); err != nil {
		return nil, wrapStoreErr(err, "could not list users")
	}
	return users, nil
}

func (r *Users) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*model.User)(nil)).Count(ctx)
	if err != nil {
		return 0, wrapStoreErr(err, "could not count users")
	}
	return n, nil
}

func (r *Users) CountCreatedSince(ctx context.Context, t time.Time) (int, error) {
	n, err := r.db.NewSelect().Model((*model.User)(nil)).
		Where("created_at >= ?", t).
		Count(ctx)
	if err != nil {
		return 0, wrapStoreErr(err, "could not count users")
	}
	return n, nil
}

func direction(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
