package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/config"
	"seastore/internal/http/handlers"
	applog "seastore/internal/log"
	"seastore/internal/services"
	"seastore/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	sessions, err := session.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	client := api.New(cfg.APIBaseURL)
	caches := cache.NewRegistry()
	authSvc := services.NewAuthService(client, sessions, caches)
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 8 << 20 // product images

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Load the session and hand its token to the API client for this request
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if err := sessions.Touch(sid); err != nil {
				applog.Error(c, "session.touch.fail", err, nil)
			}
			if sess, err := authSvc.Current(sid); err == nil {
				c.Locals("session", sess)
				c.Locals("isAdmin", sess.IsAdmin(cfg.AdminEmail))
				c.SetUserContext(api.ContextWithToken(c.UserContext(), sess.AccessToken))
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(cfg, client, sessions, caches)

	// Public pages
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/category/:slug", deps.CategoryHandler.List)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/qty", deps.CartHandler.Step)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/toggle", deps.CartHandler.Toggle)
	app.Post("/checkout", deps.CartHandler.Checkout)

	// Wishlist
	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.CategoryHandler.ToggleWishlist)

	// Orders & address
	app.Get("/orders", handlers.RequireUser(authSvc), deps.OrderHandler.History)
	app.Get("/address", deps.AddressHandler.Page)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Post("/logout", authH.Logout)

	// Admin
	admin := app.Group("/admin-dashboard", handlers.RequireAdmin(authSvc, cfg.AdminEmail))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/products", deps.AdminHandler.SaveProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
