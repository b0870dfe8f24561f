package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucaflorio/go-blog-api/internal/blog"
)

// CreatePost is admin-only; the slug is derived server-side.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	claims := session(c)

	payload := new(CreatePostRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	post, err := s.posts.Create(c.Context(), blog.PostInput{
		Title:    payload.Title,
		Content:  payload.Content,
		Category: payload.Category,
		Image:    payload.Image,
	}, claims.UID, claims.IsAdmin)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts is the public filterable listing.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	listing, err := s.posts.Query(c.Context(), blog.PostQuery{
		UserID:   c.Query("userId"),
		Category: c.Query("category"),
		Slug:     c.Query("slug"),
		PostID:   c.Query("postId"),
		Search:   c.Query("searchTerm"),
		Start:    c.QueryInt("startIndex", 0),
		Limit:    c.QueryInt("limit", 0),
		Order:    c.Query("order"),
	})
	if err != nil {
		return err
	}

	return c.JSON(listing)
}

// UpdatePost enforces the compound rule: the caller must be an admin and
// match the owner id in the path.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	claims := session(c)

	payload := new(UpdatePostRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	post, err := s.posts.Update(c.Context(), c.Params("postId"), c.Params("userId"), blog.PostPatch{
		Title:    payload.Title,
		Content:  payload.Content,
		Category: payload.Category,
		Image:    payload.Image,
	}, claims.UID, claims.IsAdmin)
	if err != nil {
		return err
	}

	return c.JSON(post)
}

// DeletePost enforces the same compound rule as UpdatePost.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	claims := session(c)

	if err := s.posts.Delete(c.Context(), c.Params("postId"), c.Params("userId"), claims.UID, claims.IsAdmin); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "the post has been deleted"})
}
