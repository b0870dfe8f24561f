package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// setAuthCookie delivers the session token. HTTP-only, SameSite=Strict,
// absolute expiry matching the token's own expiry claim.
func (s *Server) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(s.cfg.TokenTTL),
	})
}

func (s *Server) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(-24 * time.Hour),
	})
}
