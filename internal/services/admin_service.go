package services

import (
	"context"
	"io"
	"regexp"
	"strings"

	"seastore/internal/api"
	"seastore/internal/domain"
)

type AdminService struct {
	API *api.Client
}

func NewAdminService(c *api.Client) *AdminService { return &AdminService{API: c} }

// ProductInput is what the admin form submits. A zero ID means create;
// anything else patches the existing product.
type ProductInput struct {
	ID         int64
	Name       string
	Price      string
	Weight     string
	Stock      int
	CategoryID int64
	ImageName  string
	Image      io.Reader
}

// SaveProduct builds the multipart payload and creates or updates. The slug
// is derived from the name; two products with the same name collide
// silently, the backend's unique constraint is the only guard.
func (s *AdminService) SaveProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	form := api.ProductForm{
		Name:       in.Name,
		Price:      in.Price,
		Weight:     in.Weight,
		Stock:      in.Stock,
		Slug:       Slugify(in.Name),
		CategoryID: in.CategoryID,
		IsActive:   true,
		ImageName:  in.ImageName,
		Image:      in.Image,
	}
	if in.ID != 0 {
		return s.API.UpdateProduct(ctx, in.ID, form)
	}
	return s.API.CreateProduct(ctx, form)
}

// DeleteProduct removes by id; the dashboard re-fetches the full list on
// the next render rather than trimming locally.
func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	return s.API.DeleteProduct(ctx, id)
}

var nonSlug = regexp.MustCompile(`[^\w-]+`)

// Slugify lowercases, turns spaces into hyphens and strips everything that
// is not a word character or hyphen: "Tuna!! 2kg" -> "tuna-2kg".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	return nonSlug.ReplaceAllString(s, "")
}
