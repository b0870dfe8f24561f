package blog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaflorio/go-blog-api/internal/model"
	"github.com/lucaflorio/go-blog-api/internal/store"
)

type stubPostStore struct {
	posts map[string]*model.Post

	lastFilter    store.PostFilter
	lastOffset    int
	lastLimit     int
	lastAscending bool
	lastSince     time.Time
}

func newStubPostStore() *stubPostStore {
	return &stubPostStore{posts: map[string]*model.Post{}}
}

func (s *stubPostStore) Create(_ context.Context, post *model.Post) error {
	s.posts[post.ID.String()] = post
	return nil
}

func (s *stubPostStore) GetByID(_ context.Context, id string) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, errPostNotFound
	}
	cp := *post
	return &cp, nil
}

func (s *stubPostStore) Update(_ context.Context, post *model.Post) error {
	if _, ok := s.posts[post.ID.String()]; !ok {
		return errPostNotFound
	}
	s.posts[post.ID.String()] = post
	return nil
}

func (s *stubPostStore) Delete(_ context.Context, id string) error {
	delete(s.posts, id)
	return nil
}

func (s *stubPostStore) Query(_ context.Context, filter store.PostFilter, offset, limit int, ascending bool) ([]*model.Post, error) {
	s.lastFilter = filter
	s.lastOffset = offset
	s.lastLimit = limit
	s.lastAscending = ascending

	posts := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *stubPostStore) Count(_ context.Context) (int, error) {
	return len(s.posts), nil
}

func (s *stubPostStore) CreatedSince(_ context.Context, t time.Time) ([]*model.Post, error) {
	s.lastSince = t

	posts := make([]*model.Post, 0)
	for _, post := range s.posts {
		if !post.CreatedAt.Before(t) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "la-cucina-di-nonna", Slugify("La Cucina di Nonna!"))
	assert.Equal(t, "caff-e-t", Slugify("Caffè e Tè"))
	assert.Equal(t, "", Slugify(""))
}

func TestSlugifyIdempotent(t *testing.T) {
	once := Slugify("Go 1.23: What's New?")
	assert.Equal(t, once, Slugify(once))
}

func TestPostsCreateAdminOnly(t *testing.T) {
	svc := NewPosts(newStubPostStore())

	_, err := svc.Create(context.Background(), PostInput{Title: "T", Content: "C"}, "caller", false)
	assert.ErrorIs(t, err, ErrPostForbidden)
}

func TestPostsCreateRequiresTitleAndContent(t *testing.T) {
	svc := NewPosts(newStubPostStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, PostInput{Content: "only content"}, "caller", true)
	assert.ErrorIs(t, err, ErrPostFieldsRequired)

	_, err = svc.Create(ctx, PostInput{Title: "only title"}, "caller", true)
	assert.ErrorIs(t, err, ErrPostFieldsRequired)
}

func TestPostsCreateAppliesDefaultsAndSlug(t *testing.T) {
	st := newStubPostStore()
	svc := NewPosts(st)

	post, err := svc.Create(context.Background(), PostInput{
		Title:   "My First Post",
		Content: "body",
	}, "author-id", true)
	require.NoError(t, err)

	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, model.DefaultCategory, post.Category)
	assert.Equal(t, model.DefaultPostImage, post.Image)
	assert.Equal(t, "author-id", post.UserID)
	assert.Contains(t, st.posts, post.ID.String())
}

func TestPostsUpdateCompoundRule(t *testing.T) {
	st := newStubPostStore()
	svc := NewPosts(st)
	ctx := context.Background()

	post, err := svc.Create(ctx, PostInput{Title: "Original", Content: "body"}, "owner", true)
	require.NoError(t, err)

	// non-admin owner
	_, err = svc.Update(ctx, post.ID.String(), "owner", PostPatch{Title: "New"}, "owner", false)
	assert.ErrorIs(t, err, ErrPostForbidden)

	// admin with mismatched owner path
	_, err = svc.Update(ctx, post.ID.String(), "someone-else", PostPatch{Title: "New"}, "owner", true)
	assert.ErrorIs(t, err, ErrPostForbidden)

	// admin owner
	updated, err := svc.Update(ctx, post.ID.String(), "owner", PostPatch{Title: "New"}, "owner", true)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "body", updated.Content)
}

func TestPostsUpdatePatchesOnlyProvidedFields(t *testing.T) {
	st := newStubPostStore()
	svc := NewPosts(st)
	ctx := context.Background()

	post, err := svc.Create(ctx, PostInput{Title: "Keep Me", Content: "keep"}, "owner", true)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, post.ID.String(), "owner", PostPatch{Category: "golang"}, "owner", true)
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", updated.Title)
	assert.Equal(t, "keep", updated.Content)
	assert.Equal(t, "golang", updated.Category)
	// the slug is never re-derived on update
	assert.Equal(t, "keep-me", updated.Slug)
}

func TestPostsDeleteCompoundRule(t *testing.T) {
	st := newStubPostStore()
	svc := NewPosts(st)
	ctx := context.Background()

	post, err := svc.Create(ctx, PostInput{Title: "Bye", Content: "body"}, "owner", true)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, post.ID.String(), "owner", "owner", false), ErrPostForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, post.ID.String(), "other", "owner", true), ErrPostForbidden)

	require.NoError(t, svc.Delete(ctx, post.ID.String(), "owner", "owner", true))
	assert.NotContains(t, st.posts, post.ID.String())
}

func TestPostsQueryDefaultsAndOrder(t *testing.T) {
	st := newStubPostStore()
	svc := NewPosts(st)
	ctx := context.Background()

	_, err := svc.Query(ctx, PostQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, st.lastOffset)
	assert.Equal(t, 9, st.lastLimit)
	assert.False(t, st.lastAscending)

	_, err = svc.Query(ctx, PostQuery{Start: -3, Limit: 2, Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, 0, st.lastOffset)
	assert.Equal(t, 2, st.lastLimit)
	assert.True(t, st.lastAscending)
}

func TestPostsQueryEnvelope(t *testing.T) {
	st := newStubPostStore()
	svc := NewPosts(st)
	ctx := context.Background()

	fresh, err := svc.Create(ctx, PostInput{Title: "Fresh", Content: "body"}, "admin", true)
	require.NoError(t, err)

	stale, err := svc.Create(ctx, PostInput{Title: "Stale", Content: "body"}, "admin", true)
	require.NoError(t, err)
	st.posts[stale.ID.String()].CreatedAt = time.Now().AddDate(0, -2, 0)

	listing, err := svc.Query(ctx, PostQuery{Search: "anything"})
	require.NoError(t, err)

	assert.Equal(t, "anything", st.lastFilter.Search)
	assert.Equal(t, 2, listing.TotalPosts)
	require.Len(t, listing.LastMonthPosts, 1)
	assert.Equal(t, fresh.ID, listing.LastMonthPosts[0].ID)
	assert.WithinDuration(t, time.Now().AddDate(0, -1, 0), st.lastSince, time.Minute)
}
