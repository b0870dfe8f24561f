package blog

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/lucaflorio/go-blog-api/internal/model"
)

// ErrCommentForbidden is returned when the caller is neither the author nor
// an admin, or tries to comment on someone else's behalf.
var ErrCommentForbidden = errors.New("you are not allowed to modify this comment", errors.CategoryAuthz).
	WithTextCode("comment_forbidden").
	WithCode(errors.CodeForbidden)

// ErrCommentContentRequired is returned when the comment body is empty.
var ErrCommentContentRequired = errors.New("comment content is required", errors.CategoryBadInput).
	WithTextCode("comment_missing_content").
	WithCode(errors.CodeBadRequest)

// ErrAdminOnly guards the cross-post listings.
var ErrAdminOnly = errors.New("you are not allowed to access this resource", errors.CategoryAuthz).
	WithTextCode("admin_only").
	WithCode(errors.CodeForbidden)

// CommentStore is the slice of the persistence layer the engine needs.
type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	UpdateContent(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (*model.Comment, error)
	ListForPost(ctx context.Context, postID string) ([]*model.Comment, error)
	List(ctx context.Context, offset, limit int, ascending bool) ([]*model.Comment, error)
	Count(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, t time.Time) (int, error)
}

// CommentListing is the admin listing envelope.
type CommentListing struct {
	Comments            []*model.Comment `json:"comments"`
	TotalComments       int              `json:"totalComments"`
	CommentsInLastMonth int              `json:"commentsInLastMonth"`
}

// Comments is the comment interaction engine.
type Comments struct {
	store  CommentStore
	logger Logger
}

// NewComments returns a new comment interaction engine.
func NewComments(store CommentStore) *Comments {
	return &Comments{store: store, logger: defLogger{}}
}

func (s *Comments) WithLogger(logger Logger) *Comments {
	s.logger = logger
	return s
}

// Create persists a comment. The supplied author id must be the caller's
// own id.
func (s *Comments) Create(ctx context.Context, content, postID, userID, callerID string) (*model.Comment, error) {
	if userID != callerID {
		return nil, ErrCommentForbidden
	}
	if content == "" {
		return nil, ErrCommentContentRequired
	}

	now := time.Now()
	comment := &model.Comment{
		ID:            uuid.New(),
		PostID:        postID,
		UserID:        userID,
		Content:       content,
		Likes:         []string{},
		NumberOfLikes: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike flips the caller's like on the comment. Toggling twice with
// the same caller restores the original state.
func (s *Comments) ToggleLike(ctx context.Context, commentID, callerID string) (*model.Comment, error) {
	return s.store.ToggleLike(ctx, commentID, callerID)
}

// Edit replaces the comment body. Only the author or an admin may edit;
// likes and the counter are untouched.
func (s *Comments) Edit(ctx context.Context, commentID, content, callerID string, callerIsAdmin bool) (*model.Comment, error) {
	comment, err := s.store.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != callerID && !callerIsAdmin {
		return nil, ErrCommentForbidden
	}

	comment.Content = content
	if err := s.store.UpdateContent(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment under the same authorization rule as Edit.
func (s *Comments) Delete(ctx context.Context, commentID, callerID string, callerIsAdmin bool) error {
	comment, err := s.store.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != callerID && !callerIsAdmin {
		return ErrCommentForbidden
	}

	return s.store.Delete(ctx, commentID)
}

// ListForPost returns the post's comments newest first, unpaginated.
func (s *Comments) ListForPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	return s.store.ListForPost(ctx, postID)
}

// ListAll is admin-only. Sort "desc" returns newest first; the default is
// oldest first.
func (s *Comments) ListAll(ctx context.Context, q ListQuery, callerIsAdmin bool) (*CommentListing, error) {
	if !callerIsAdmin {
		return nil, ErrAdminOnly
	}

	comments, err := s.store.List(ctx, q.start(), q.limit(), q.Sort != "desc")
	if err != nil {
		return nil, err
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.store.CountCreatedSince(ctx, oneMonthAgo())
	if err != nil {
		return nil, err
	}

	return &CommentListing{
		Comments:            comments,
		TotalComments:       total,
		CommentsInLastMonth: lastMonth,
	}, nil
}
