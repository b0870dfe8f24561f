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

// Comments is the comment repository.
type Comments struct {
	db *bun.DB
}

func (r *Comments) Create(ctx context.Context, comment *model.Comment) error {
	if _, err := r.db.NewInsert().Model(comment).Exec(ctx); err != nil {
		return wrapStoreErr(err, "could not create comment")
	}
	return nil
}

func (r *Comments) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	return r.getByID(ctx, r.db, id)
}

func (r *Comments) getByID(ctx context.Context, db bun.IDB, id string) (*model.Comment, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, notFoundErr("comment")
	}

	comment := new(model.Comment)
	err = db.NewSelect().Model(comment).Where("cmt.id = ?", cid).Scan(ctx)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFoundErr("comment")
	}
	if err != nil {
		return nil, wrapStoreErr(err, "could not load comment")
	}
	return comment, nil
}

// UpdateContent replaces the comment body, leaving likes and the counter
// untouched.
func (r *Comments) UpdateContent(ctx context.Context, comment *model.Comment) error {
	comment.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().Model(comment).
		Column("content", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return wrapStoreErr(err, "could not update comment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFoundErr("comment")
	}
	return nil
}

func (r *Comments) Delete(ctx context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return notFoundErr("comment")
	}
	if _, err := r.db.NewDelete().Model((*model.Comment)(nil)).Where("id = ?", cid).Exec(ctx); err != nil {
		return wrapStoreErr(err, "could not delete comment")
	}
	return nil
}

// ToggleLike flips userID's like on the comment. The likes set and the
// counter are written in the same statement inside one transaction, so the
// two can never diverge; concurrent toggles serialize at the database.
func (r *Comments) ToggleLike(ctx context.Context, id, userID string) (*model.Comment, error) {
	var comment *model.Comment

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		comment, err = r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if comment.LikedBy(userID) {
			likes := make([]string, 0, len(comment.Likes))
			for _, uid := range comment.Likes {
				if uid != userID {
					likes = append(likes, uid)
				}
			}
			comment.Likes = likes
			comment.NumberOfLikes--
		} else {
			comment.Likes = append(comment.Likes, userID)
			comment.NumberOfLikes++
		}
		comment.UpdatedAt = time.Now()

		_, err = tx.NewUpdate().Model(comment).
			Column("likes", "number_of_likes", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return wrapStoreErr(err, "could not update comment likes")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// ListForPost returns every comment on the post, newest first.
func (r *Comments) ListForPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := r.db.NewSelect().Model(&comments).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "could not list comments")
	}
	return comments, nil
}

// List returns a page of comments ordered by creation time.
func (r *Comments) List(ctx context.Context, offset, limit int, ascending bool) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := r.db.NewSelect().Model(&comments).
		Order("created_at " + direction(ascending)).
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "could not list comments")
	}
	return comments, nil
}

func (r *Comments) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*model.Comment)(nil)).Count(ctx)
	if err != nil {
		return 0, wrapStoreErr(err, "could not count comments")
	}
	return n, nil
}

func (r *Comments) CountCreatedSince(ctx context.Context, t time.Time) (int, error) {
	n, err := r.db.NewSelect().Model((*model.Comment)(nil)).
		Where("created_at >= ?", t).
		Count(ctx)
	if err != nil {
		return 0, wrapStoreErr(err, "could not count comments")
	}
	return n, nil
}
