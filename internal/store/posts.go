package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/lucaflorio/go-blog-api/internal/model"
)

// PostFilter narrows a post query. Zero-valued fields are ignored. Search
// matches a case-insensitive substring in either title or content.
type PostFilter struct {
	UserID   string
	Category string
	Slug     string
	PostID   string
	Search   string
}

// Posts is the article repository.
type Posts struct {
	db *bun.DB
}

func (r *Posts) Create(ctx context.Context, post *model.Post) error {
	if _, err := r.db.NewInsert().Model(post).Exec(ctx); err != nil {
		return wrapStoreErr(err, "could not create post")
	}
	return nil
}

func (r *Posts) GetByID(ctx context.Context, id string) (*model.Post, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, notFoundErr("post")
	}

	post := new(model.Post)
	err = r.db.NewSelect().Model(post).Where("pst.id = ?", pid).Scan(ctx)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFoundErr("post")
	}
	if err != nil {
		return nil, wrapStoreErr(err, "could not load post")
	}
	return post, nil
}

// Update persists the whitelisted mutable fields and bumps updated_at.
func (r *Posts) Update(ctx context.Context, post *model.Post) error {
	post.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().Model(post).
		Column("title", "content", "category", "image", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return wrapStoreErr(err, "could not update post")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFoundErr("post")
	}
	return nil
}

func (r *Posts) Delete(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return notFoundErr("post")
	}
	if _, err := r.db.NewDelete().Model((*model.Post)(nil)).Where("id = ?", pid).Exec(ctx); err != nil {
		return wrapStoreErr(err, "could not delete post")
	}
	return nil
}

// Query returns a page of posts sorted by last update time.
func (r *Posts) Query(ctx context.Context, filter PostFilter, offset, limit int, ascending bool) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	q := r.db.NewSelect().Model(&posts)
	applyPostFilter(q, filter)
	q.Order("updated_at " + direction(ascending)).
		Offset(offset).
		Limit(limit)
	if err := q.Scan(ctx); err != nil {
		return nil, wrapStoreErr(err, "could not query posts")
	}
	return posts, nil
}

func (r *Posts) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*model.Post)(nil)).Count(ctx)
	if err != nil {
		return 0, wrapStoreErr(err, "could not count posts")
	}
	return n, nil
}

// CreatedSince returns the posts created at or after t, unpaginated.
func (r *Posts) CreatedSince(ctx context.Context, t time.Time) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := r.db.NewSelect().Model(&posts).
		Where("created_at >= ?", t).
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "could not query posts")
	}
	return posts, nil
}

func applyPostFilter(q *bun.SelectQuery, filter PostFilter) {
	if filter.UserID != "" {
		q.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		q.Where("category = ?", filter.Category)
	}
	if filter.Slug != "" {
		q.Where("slug = ?", filter.Slug)
	}
	if filter.PostID != "" {
		q.Where("pst.id = ?", filter.PostID)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(title) LIKE ?", term).
				WhereOr("lower(content) LIKE ?", term)
		})
	}
}
