package services

import (
	"context"

	"seastore/internal/api"
	"seastore/internal/domain"
)

type CatalogService struct {
	API *api.Client
}

func NewCatalogService(c *api.Client) *CatalogService { return &CatalogService{API: c} }

// Categories returns the backend's category list. When the backend is down
// or returns nothing, the four demo seafood categories keep the home page
// usable; callers decide whether to surface the error.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.API.ListCategories(ctx)
	if err != nil || len(cats) == 0 {
		return FallbackCategories(), err
	}
	return cats, nil
}

// ProductsBySlug fetches all products and filters client-side on the
// category slug. Linear scan, fine at catalog scale.
func (s *CatalogService) ProductsBySlug(ctx context.Context, slug string) ([]domain.Product, error) {
	all, err := s.API.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Category.Slug == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CatalogService) AllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.API.ListProducts(ctx)
}

// CategoryBySlug resolves the numeric category id the admin form needs.
func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (domain.Category, bool) {
	cats, err := s.API.ListCategories(ctx)
	if err != nil {
		return domain.Category{}, false
	}
	for _, c := range cats {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.Category{}, false
}

func FallbackCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Fish", Slug: "fish", Description: "Fresh daily catch, premium quality fish"},
		{ID: 2, Name: "Squid", Slug: "squid", Description: "Fresh squid, cleaned and ready to cook"},
		{ID: 3, Name: "Crab", Slug: "crab", Description: "Fresh live crab, sweet and tender meat"},
		{ID: 4, Name: "Prawns", Slug: "prawns", Description: "Large fresh prawns, peeled and deveined"},
	}
}
