package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "seastore/internal/log"
	"seastore/internal/services"
	"seastore/internal/validate"
)

type AdminHandler struct {
	Admin   *services.AdminService
	Catalog *services.CatalogService
}

// Dashboard lists every product for editing. Always a fresh fetch; deletes
// rely on this re-fetch instead of trimming locally.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Catalog.AllProducts(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
	}
	cats, _ := h.Catalog.Categories(c.UserContext())
	return render(c, "admin_dashboard", fiber.Map{"Products": products, "Categories": cats})
}

// SaveProduct creates or updates depending on the id field, forwarding the
// optional image upload as a multipart part.
func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	in := services.ProductInput{
		Name:   c.FormValue("name"),
		Price:  c.FormValue("price"),
		Weight: c.FormValue("weight"),
		Stock:  validate.Stock(c.FormValue("stock")),
	}
	if in.Name == "" || in.Price == "" {
		return c.Status(400).SendString("missing name or price")
	}
	if id, ok := validate.ProductID(c.FormValue("id")); ok {
		in.ID = id
	}
	catID, ok := validate.ProductID(c.FormValue("category_id"))
	if !ok {
		return c.Status(400).SendString("missing category_id")
	}
	in.CategoryID = catID

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			applog.Error(c, "admin.product.image.fail", err, nil)
			return c.Status(400).SendString("could not read image")
		}
		defer f.Close()
		in.Image = f
		in.ImageName = fh.Filename
	}

	p, err := h.Admin.SaveProduct(c.UserContext(), in)
	if err != nil {
		applog.Error(c, "admin.product.save.fail", err, map[string]any{"name": in.Name, "id": in.ID})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.product.save", map[string]any{"id": p.ID, "slug": p.Slug})
	return backTo(c, "/admin-dashboard")
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Admin.DeleteProduct(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"id": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"id": id})
	return c.Redirect("/admin-dashboard")
}
