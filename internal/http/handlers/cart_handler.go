package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"seastore/internal/cache"
	applog "seastore/internal/log"
	"seastore/internal/services"
	"seastore/internal/validate"
)

type CartHandler struct {
	Cart   *services.CartService
	Orders *services.OrderService
	Caches *cache.Registry
}

// View renders the cart page. A failed fetch shows the demo fallback line
// instead of an error page; the outage is only visible in the logs.
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(c.UserContext(), h.Caches.For(sid))
	if err != nil {
		applog.Error(c, "cart.fetch.fail", err, nil)
	}
	return render(c, "cart", fiber.Map{"Items": cv.Items, "Total": float64(cv.Total), "Fallback": cv.Fallback})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	store := h.Caches.For(sid)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	p, err := h.Cart.ResolveProduct(c.UserContext(), store, id)
	if err != nil {
		applog.Error(c, "cart.resolve.fail", err, map[string]any{"product": id})
		return c.Status(404).SendString("product not found")
	}
	if err := h.Cart.Add(c.UserContext(), store, p); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": id})
		return backTo(c, "/cart")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": id})
	return backTo(c, "/cart")
}

// Toggle is the wishlist page's add/remove cart button.
func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	store := h.Caches.For(sid)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	p, err := h.Cart.ResolveProduct(c.UserContext(), store, id)
	if err != nil {
		return c.Status(404).SendString("product not found")
	}
	added, err := h.Cart.Toggle(c.UserContext(), store, p)
	if err != nil {
		applog.Error(c, "cart.toggle.fail", err, map[string]any{"product": id})
		return backTo(c, "/cart")
	}
	applog.Audit(c, "cart.toggle", map[string]any{"product": id, "added": added})
	return backTo(c, "/cart")
}

// Step handles the quantity stepper: a signed delta through the add
// endpoint. A step below 1 never leaves the gateway.
func (h *CartHandler) Step(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	delta, ok := validate.Delta(c.FormValue("delta"))
	if !ok {
		return c.Status(400).SendString("bad delta")
	}
	err := h.Cart.Step(c.UserContext(), h.Caches.For(sid), id, delta)
	switch {
	case errors.Is(err, services.ErrQuantityFloor), errors.Is(err, services.ErrNotInCart):
		return c.Redirect("/cart")
	case err != nil:
		applog.Error(c, "cart.step.fail", err, map[string]any{"product": id, "delta": delta})
		return c.Redirect("/cart")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	if err := h.Cart.Remove(c.UserContext(), h.Caches.For(sid), id); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": id})
		return c.Redirect("/cart")
	}
	applog.Audit(c, "cart.remove", map[string]any{"product": id})
	return c.Redirect("/cart")
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	order, err := h.Orders.Checkout(c.UserContext(), h.Caches.For(sid))
	if err != nil {
		applog.Error(c, "cart.checkout.fail", err, nil)
		return c.Redirect("/cart")
	}
	applog.Audit(c, "cart.checkout", map[string]any{"order": order.ID})
	return c.Redirect("/orders")
}
