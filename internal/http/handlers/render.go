package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"seastore/internal/domain"
)

// ensureSID returns the sid cookie, minting one on first touch.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// currentSession reads the session the middleware loaded, never nil.
func currentSession(c *fiber.Ctx) *domain.Session {
	if s, ok := c.Locals("session").(*domain.Session); ok && s != nil {
		return s
	}
	return &domain.Session{}
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	sess := currentSession(c)
	if sess.LoggedIn() {
		data["Username"] = sess.Username()
	}
	if admin, ok := c.Locals("isAdmin").(bool); ok {
		data["IsAdmin"] = admin
	}
	if tok, ok := c.Locals("CSRFToken").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
