package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucaflorio/go-blog-api/internal/auth"
)

// sessionKey is where the guard stores the verified claims for handlers.
const sessionKey = "session"

// RequireSession is the access control guard: it extracts the token from
// the session cookie, verifies it and attaches the claims to the request.
// It makes no authorization decision; handlers do that against the claims.
func (s *Server) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(s.cfg.CookieName)
		if raw == "" {
			return ErrMissingSession
		}

		claims, err := s.tokens.Validate(raw)
		if err != nil {
			return ErrMissingSession
		}

		c.Locals(sessionKey, claims)
		return c.Next()
	}
}

// session returns the claims the guard attached. Only reachable behind
// RequireSession.
func session(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(sessionKey).(*auth.Claims)
	return claims
}
