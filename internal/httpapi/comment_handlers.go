package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucaflorio/go-blog-api/internal/blog"
)

// CreateComment persists a comment authored by the caller.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	claims := session(c)

	payload := new(CreateCommentRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	comment, err := s.comments.Create(c.Context(), payload.Content, payload.PostID, payload.UserID, claims.UID)
	if err != nil {
		return err
	}

	return c.JSON(comment)
}

// GetPostComments returns a post's comments, newest first.
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	comments, err := s.comments.ListForPost(c.Context(), c.Params("postId"))
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

// LikeComment toggles the caller's like.
func (s *Server) LikeComment(c *fiber.Ctx) error {
	claims := session(c)

	comment, err := s.comments.ToggleLike(c.Context(), c.Params("commentId"), claims.UID)
	if err != nil {
		return err
	}

	return c.JSON(comment)
}

// EditComment replaces the body; author or admin only.
func (s *Server) EditComment(c *fiber.Ctx) error {
	claims := session(c)

	payload := new(EditCommentRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	comment, err := s.comments.Edit(c.Context(), c.Params("commentId"), payload.Content, claims.UID, claims.IsAdmin)
	if err != nil {
		return err
	}

	return c.JSON(comment)
}

// DeleteComment removes a comment; author or admin only.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	claims := session(c)

	if err := s.comments.Delete(c.Context(), c.Params("commentId"), claims.UID, claims.IsAdmin); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "comment has been deleted"})
}

// GetComments is the admin listing.
func (s *Server) GetComments(c *fiber.Ctx) error {
	claims := session(c)

	listing, err := s.comments.ListAll(c.Context(), blog.ListQuery{
		Start: c.QueryInt("startIndex", 0),
		Limit: c.QueryInt("limit", 0),
		Sort:  c.Query("sort"),
	}, claims.IsAdmin)
	if err != nil {
		return err
	}

	return c.JSON(listing)
}
