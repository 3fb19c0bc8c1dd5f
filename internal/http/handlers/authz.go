package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "seastore/internal/log"
	"seastore/internal/services"
)

// RequireUser redirects anonymous sessions to the login page.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		sess, err := auth.Current(sid)
		if err != nil || !sess.LoggedIn() {
			return c.Redirect("/login")
		}
		c.Locals("session", sess)
		return c.Next()
	}
}

// RequireAdmin gates the admin dashboard on the authorization capability:
// role claim when the token carries one, configured admin address
// otherwise.
func RequireAdmin(auth *services.AuthService, adminEmail string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		sess, err := auth.Current(sid)
		if err != nil || !sess.IsAdmin(adminEmail) {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("session", sess)
		c.Locals("isAdmin", true)
		return c.Next()
	}
}
