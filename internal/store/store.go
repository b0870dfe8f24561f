package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/lucaflorio/go-blog-api/internal/model"
)

// Store exposes all repositories over a single bun handle.
type Store struct {
	db       *bun.DB
	users    *Users
	posts    *Posts
	comments *Comments
}

// Open connects to the database behind dsn and wraps it with bun.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not open database")
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// New builds the repositories on top of db.
func New(db *bun.DB) *Store {
	return &Store{
		db:       db,
		users:    &Users{db: db},
		posts:    &Posts{db: db},
		comments: &Comments{db: db},
	}
}

func (s *Store) Users() *Users       { return s.users }
func (s *Store) Posts() *Posts       { return s.posts }
func (s *Store) Comments() *Comments { return s.comments }

// CreateTables bootstraps the schema. Safe to run on every startup.
func (s *Store) CreateTables(ctx context.Context) error {
	for _, m := range []any{
		(*model.User)(nil),
		(*model.Post)(nil),
		(*model.Comment)(nil),
	} {
		if _, err := s.db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "could not create tables")
		}
	}
	return nil
}

// RunInTx executes f inside a single transaction.
func (s *Store) RunInTx(ctx context.Context, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return s.db.RunInTx(ctx, nil, f)
	}
}

// notFoundErr builds the canonical absent-record error for an entity.
func notFoundErr(entity string) *errors.Error {
	return errors.New(entity+" not found", errors.CategoryNotFound).
		WithTextCode("store_not_found").
		WithCode(errors.CodeNotFound)
}

// wrapStoreErr normalizes driver failures: uniqueness violations become
// conflicts, everything else is internal. Store failures are never retried.
func wrapStoreErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return errors.Wrap(err, errors.CategoryConflict, msg+": record already exists").
			WithTextCode("store_conflict").
			WithCode(errors.CodeConflict)
	}
	return errors.Wrap(err, errors.CategoryInternal, msg).
		WithCode(errors.CodeInternal)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint violation")
}
