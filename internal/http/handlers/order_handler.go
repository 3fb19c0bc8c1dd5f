package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "seastore/internal/log"
	"seastore/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// History lists the logged-in user's orders, newest first per the backend.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	ensureSID(c)
	orders, err := h.Orders.History(c.UserContext())
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		orders = nil
	}
	return render(c, "orders", fiber.Map{"Orders": orders})
}

type AddressHandler struct{}

// Page is the delivery address placeholder page.
func (h *AddressHandler) Page(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "address", fiber.Map{})
}
