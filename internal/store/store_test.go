package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/lucaflorio/go-blog-api/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxIdleConns(1000)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	st := New(db)
	require.NoError(t, st.CreateTables(context.Background()))

	// shared-cache memory DBs survive across connections within the
	// process, so start every test from clean tables
	for _, m := range []any{(*model.Comment)(nil), (*model.Post)(nil), (*model.User)(nil)} {
		_, err := db.NewDelete().Model(m).Where("1 = 1").Exec(context.Background())
		require.NoError(t, err)
	}

	return st
}

func newUser(username, email string) *model.User {
	now := time.Now()
	return &model.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		ProfilePicture: model.DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newPost(userID, title, slug string) *model.Post {
	now := time.Now()
	return &model.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   "some content",
		Image:     model.DefaultPostImage,
		Category:  model.DefaultCategory,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newComment(postID, userID, content string) *model.Comment {
	now := time.Now()
	return &model.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func requireCategory(t *testing.T, err error, category errors.Category) {
	t.Helper()
	var rich *errors.Error
	require.ErrorAs(t, err, &rich)
	require.Equal(t, category, rich.Category)
}
