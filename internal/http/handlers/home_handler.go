package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "seastore/internal/log"
	"seastore/internal/services"
)

type HomeHandler struct {
	Catalog *services.CatalogService
}

// Home renders the category grid. A dead backend degrades to the demo
// categories instead of an error page.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	ensureSID(c)
	cats, err := h.Catalog.Categories(c.UserContext())
	if err != nil {
		applog.Error(c, "home.categories.fail", err, nil)
	}
	return render(c, "home", fiber.Map{"Categories": cats})
}
