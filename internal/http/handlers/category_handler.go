package handlers

import (
	"github.com/gofiber/fiber/v2"

	"seastore/internal/cache"
	applog "seastore/internal/log"
	"seastore/internal/services"
	"seastore/internal/validate"
)

type CategoryHandler struct {
	Catalog    *services.CatalogService
	Cart       *services.CartService
	Wish       *services.WishlistService
	Caches     *cache.Registry
	AdminEmail string
}

type productCard struct {
	ID         int64
	Name       string
	Price      float64
	Weight     string
	Stock      int
	Image      string
	InCart     bool
	InWishlist bool
}

// List renders one category page: all products filtered by the route slug,
// with cart/wishlist membership badges derived from the session mirror.
// Wishlist and cart fetches are best-effort; their failure only loses the
// badges.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	sid := ensureSID(c)
	store := h.Caches.For(sid)
	ctx := c.UserContext()

	products, err := h.Catalog.ProductsBySlug(ctx, slug)
	if err != nil {
		applog.Error(c, "category.products.fail", err, map[string]any{"slug": slug})
		products = nil
	}
	if _, err := h.Wish.List(ctx, store); err != nil {
		applog.Error(c, "category.wishlist.fail", err, nil)
	}
	if _, err := h.Cart.View(ctx, store); err != nil {
		applog.Error(c, "category.cart.fail", err, nil)
	}

	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, productCard{
			ID:         p.ID,
			Name:       p.Name,
			Price:      float64(p.Price),
			Weight:     p.Weight,
			Stock:      p.Stock,
			Image:      p.Image,
			InCart:     store.InCart(p.ID),
			InWishlist: store.InWishlist(p.ID),
		})
	}

	data := fiber.Map{"Slug": slug, "Products": cards}
	if cat, ok := h.Catalog.CategoryBySlug(ctx, slug); ok {
		data["CategoryID"] = cat.ID
		data["CategoryName"] = cat.Name
	}
	if currentSession(c).IsAdmin(h.AdminEmail) {
		data["IsAdmin"] = true
	}
	return render(c, "category", data)
}

// ToggleWishlist flips wishlist membership for a product and bounces back
// to the referring page.
func (h *CategoryHandler) ToggleWishlist(c *fiber.Ctx) error {
	sid := ensureSID(c)
	store := h.Caches.For(sid)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	p, err := h.Cart.ResolveProduct(c.UserContext(), store, id)
	if err != nil {
		applog.Error(c, "wishlist.resolve.fail", err, map[string]any{"product": id})
		return c.Status(404).SendString("product not found")
	}
	added, err := h.Wish.Toggle(c.UserContext(), store, p)
	if err != nil {
		applog.Error(c, "wishlist.toggle.fail", err, map[string]any{"product": id})
		return backTo(c, "/wishlist")
	}
	applog.Audit(c, "wishlist.toggle", map[string]any{"product": id, "added": added})
	return backTo(c, "/wishlist")
}

func backTo(c *fiber.Ctx, fallback string) error {
	back := c.Get("Referer")
	if back == "" {
		back = fallback
	}
	return c.Redirect(back)
}
