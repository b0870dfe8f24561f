package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucaflorio/go-blog-api/internal/blog"
)

// SignOut clears the session cookie. Stateless tokens have no server-side
// revocation, so this is all sign-out does.
func (s *Server) SignOut(c *fiber.Ctx) error {
	s.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "user has been signed out"})
}

// GetUser returns a public profile.
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.users.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(user.Public())
}

// GetUsers is the admin listing.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	claims := session(c)

	listing, err := s.users.List(c.Context(), blog.ListQuery{
		Start: c.QueryInt("startIndex", 0),
		Limit: c.QueryInt("limit", 0),
		Sort:  c.Query("sort"),
	}, claims.IsAdmin)
	if err != nil {
		return err
	}

	return c.JSON(listing)
}

// UpdateUser patches the caller's own profile.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	claims := session(c)

	payload := new(UpdateUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	user, err := s.users.Update(c.Context(), c.Params("userId"), blog.UserPatch{
		Username:       payload.Username,
		Email:          payload.Email,
		Password:       payload.Password,
		ProfilePicture: payload.ProfilePicture,
	}, claims.UID)
	if err != nil {
		return err
	}

	return c.JSON(user.Public())
}

// DeleteUser removes an account, permitted to the owner or an admin.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	claims := session(c)

	if err := s.users.Delete(c.Context(), c.Params("userId"), claims.UID, claims.IsAdmin); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "user has been deleted"})
}
