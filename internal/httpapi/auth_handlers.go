package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

// SignUp registers a local account. No session is issued; the client signs
// in separately.
func (s *Server) SignUp(c *fiber.Ctx) error {
	payload := new(SignUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	if err := s.resolver.SignUp(c.Context(), payload.Username, payload.Email, payload.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "signup successful"})
}

// SignIn verifies local credentials, sets the session cookie and returns
// the public user record.
func (s *Server) SignIn(c *fiber.Ctx) error {
	payload := new(SignInRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	user, token, err := s.resolver.SignIn(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	s.setAuthCookie(c, token)
	return c.JSON(user.Public())
}

// Google resolves a federated identity, creating the account on first
// contact, and sets the session cookie.
func (s *Server) Google(c *fiber.Ctx) error {
	payload := new(GoogleRequest)
	if err := c.BodyParser(payload); err != nil {
		return ErrInvalidBody
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	user, token, err := s.resolver.Google(c.Context(), payload.Name, payload.Email, payload.PhotoURL)
	if err != nil {
		return err
	}

	s.setAuthCookie(c, token)
	return c.JSON(user.Public())
}
