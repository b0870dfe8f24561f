package blog

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/lucaflorio/go-blog-api/internal/model"
	"github.com/lucaflorio/go-blog-api/internal/store"
)

// ErrPostForbidden is returned when the caller fails the post mutation
// rules.
var ErrPostForbidden = errors.New("you are not allowed to modify this post", errors.CategoryAuthz).
	WithTextCode("post_forbidden").
	WithCode(errors.CodeForbidden)

// ErrPostFieldsRequired is returned when title or content is missing.
var ErrPostFieldsRequired = errors.New("title and content are required", errors.CategoryBadInput).
	WithTextCode("post_missing_fields").
	WithCode(errors.CodeBadRequest)

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// Slugify derives the URL slug from a title: spaces become hyphens, the
// result is lowercased and every character outside [a-zA-Z0-9-] is dropped.
// Deterministic, and idempotent over its own output.
func Slugify(title string) string {
	slug := strings.Join(strings.Split(title, " "), "-")
	slug = strings.ToLower(slug)
	return slugStrip.ReplaceAllString(slug, "")
}

// PostStore is the slice of the persistence layer the manager needs.
type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, filter store.PostFilter, offset, limit int, ascending bool) ([]*model.Post, error)
	Count(ctx context.Context) (int, error)
	CreatedSince(ctx context.Context, t time.Time) ([]*model.Post, error)
}

// PostInput is the create payload after transport validation.
type PostInput struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// PostPatch carries the whitelisted mutable fields; empty values are left
// unchanged.
type PostPatch struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// PostQuery narrows and pages the public listing.
type PostQuery struct {
	UserID   string
	Category string
	Slug     string
	PostID   string
	Search   string
	Start    int
	Limit    int
	Order    string
}

// PostListing is the public listing envelope. LastMonthPosts is the set of
// posts created in the trailing calendar month, not a count.
type PostListing struct {
	Posts          []*model.Post `json:"posts"`
	TotalPosts     int           `json:"totalPosts"`
	LastMonthPosts []*model.Post `json:"lastMonthPosts"`
}

// Posts is the post lifecycle manager.
type Posts struct {
	store  PostStore
	logger Logger
}

// NewPosts returns a new post lifecycle manager.
func NewPosts(store PostStore) *Posts {
	return &Posts{store: store, logger: defLogger{}}
}

func (s *Posts) WithLogger(logger Logger) *Posts {
	s.logger = logger
	return s
}

// Create is admin-only. The slug is derived from the title; a duplicate
// slug surfaces as the store's conflict error.
func (s *Posts) Create(ctx context.Context, in PostInput, callerID string, callerIsAdmin bool) (*model.Post, error) {
	if !callerIsAdmin {
		return nil, ErrPostForbidden
	}
	if in.Title == "" || in.Content == "" {
		return nil, ErrPostFieldsRequired
	}

	now := time.Now()
	post := &model.Post{
		ID:        uuid.New(),
		UserID:    callerID,
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Image:     in.Image,
		Slug:      Slugify(in.Title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if post.Category == "" {
		post.Category = model.DefaultCategory
	}
	if post.Image == "" {
		post.Image = model.DefaultPostImage
	}

	if err := s.store.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", "slug", post.Slug)
	return post, nil
}

// Update is allowed only when the caller is an admin AND the caller id
// matches the owner id supplied in the request path. Both predicates are
// required; an admin acting on another owner's path is rejected.
func (s *Posts) Update(ctx context.Context, postID, ownerID string, patch PostPatch, callerID string, callerIsAdmin bool) (*model.Post, error) {
	if !callerIsAdmin || callerID != ownerID {
		return nil, ErrPostForbidden
	}

	post, err := s.store.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		post.Title = patch.Title
	}
	if patch.Content != "" {
		post.Content = patch.Content
	}
	if patch.Category != "" {
		post.Category = patch.Category
	}
	if patch.Image != "" {
		post.Image = patch.Image
	}

	if err := s.store.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete applies the same compound rule as Update.
func (s *Posts) Delete(ctx context.Context, postID, ownerID, callerID string, callerIsAdmin bool) error {
	if !callerIsAdmin || callerID != ownerID {
		return ErrPostForbidden
	}
	return s.store.Delete(ctx, postID)
}

// Query is public. Order "asc" sorts oldest-updated first, anything else
// newest-updated first.
func (s *Posts) Query(ctx context.Context, q PostQuery) (*PostListing, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 9
	}
	start := q.Start
	if start < 0 {
		start = 0
	}

	filter := store.PostFilter{
		UserID:   q.UserID,
		Category: q.Category,
		Slug:     q.Slug,
		PostID:   q.PostID,
		Search:   q.Search,
	}

	posts, err := s.store.Query(ctx, filter, start, limit, q.Order == "asc")
	if err != nil {
		return nil, err
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.store.CreatedSince(ctx, oneMonthAgo())
	if err != nil {
		return nil, err
	}

	return &PostListing{
		Posts:          posts,
		TotalPosts:     total,
		LastMonthPosts: lastMonth,
	}, nil
}

// oneMonthAgo is now minus one calendar month, not a fixed 30-day window.
func oneMonthAgo() time.Time {
	return time.Now().AddDate(0, -1, 0)
}
