package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "seastore/internal/log"
	"seastore/internal/services"
	"seastore/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "login", fiber.Map{"Err": ""})
}

// Login posts credentials to the token endpoint. Any failure (wrong
// password, dead backend) surfaces the same generic message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email, ok := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	if !ok || pass == "" {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid credentials. Please check your email and password."})
	}
	if _, err := h.Auth.Login(c.UserContext(), sid, email, pass); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid credentials. Please check your email and password."})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	ensureSID(c)
	name := c.FormValue("name")
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("signup", fiber.Map{"Err": "Registration failed. Please check your details."})
	}
	err := h.Auth.Signup(c.UserContext(), name, email, c.FormValue("password"), c.FormValue("confirm_password"))
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		return c.Status(400).Render("signup", fiber.Map{"Err": "Passwords don't match!"})
	case errors.Is(err, services.ErrAccountExists):
		return c.Status(400).Render("signup", fiber.Map{"Err": "An account with this email already exists."})
	case err != nil:
		applog.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return c.Status(400).Render("signup", fiber.Map{"Err": "Registration failed. Please try again."})
	}
	applog.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.Redirect("/login")
}

// Logout wipes local credentials only; the backend token is left to expire.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
