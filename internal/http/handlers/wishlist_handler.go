package handlers

import (
	"github.com/gofiber/fiber/v2"

	"seastore/internal/cache"
	applog "seastore/internal/log"
	"seastore/internal/services"
)

type WishlistHandler struct {
	Wish   *services.WishlistService
	Cart   *services.CartService
	Caches *cache.Registry
}

type wishlistCard struct {
	ID     int64
	Name   string
	Price  float64
	Weight string
	Stock  int
	Image  string
	InCart bool
}

// List renders the wishlist with per-product cart membership. Both fetches
// go to the shared session mirror, so the cart page and this page agree
// within a session.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	store := h.Caches.For(sid)
	ctx := c.UserContext()

	products, err := h.Wish.List(ctx, store)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, nil)
		products = nil
	}
	if _, err := h.Cart.View(ctx, store); err != nil {
		applog.Error(c, "wishlist.cart.fail", err, nil)
	}

	cards := make([]wishlistCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, wishlistCard{
			ID:     p.ID,
			Name:   p.Name,
			Price:  float64(p.Price),
			Weight: p.Weight,
			Stock:  p.Stock,
			Image:  p.Image,
			InCart: store.InCart(p.ID),
		})
	}
	return render(c, "wishlist", fiber.Map{"Items": cards})
}
