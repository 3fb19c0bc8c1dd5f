package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"seastore/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, "GET", "products/products/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, "GET", "products/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductForm is the multipart payload for the admin create/update flow.
// Image is optional; when set it is streamed as a file part.
type ProductForm struct {
	Name       string
	Price      string
	Weight     string
	Stock      int
	Slug       string
	CategoryID int64
	IsActive   bool
	ImageName  string
	Image      io.Reader
}

func (f ProductForm) write(w *multipart.Writer) error {
	fields := map[string]string{
		"name":        f.Name,
		"price":       f.Price,
		"weight":      f.Weight,
		"stock":       strconv.Itoa(f.Stock),
		"slug":        f.Slug,
		"category_id": strconv.FormatInt(f.CategoryID, 10),
		"is_active":   strconv.FormatBool(f.IsActive),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if f.Image != nil {
		part, err := w.CreateFormFile("image", f.ImageName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Image); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (domain.Product, error) {
	var out domain.Product
	err := c.doMultipart(ctx, "POST", "products/products/", form.write, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, form ProductForm) (domain.Product, error) {
	var out domain.Product
	err := c.doMultipart(ctx, "PATCH", fmt.Sprintf("products/products/%d/", id), form.write, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("products/products/%d/", id), nil, nil)
}
