package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"seastore/internal/api"
	"seastore/internal/domain"
	"seastore/internal/services"
)

func newDeadClient() *api.Client {
	// Nothing listens on this port; every call is a transport error.
	return api.New("http://127.0.0.1:1")
}

func TestProductsBySlugFiltersClientSide(t *testing.T) {
	fish := domain.Category{ID: 1, Name: "Fish", Slug: "fish"}
	crab := domain.Category{ID: 3, Name: "Crab", Slug: "crab"}
	all := []domain.Product{
		{ID: 1, Name: "Salmon", Category: fish},
		{ID: 2, Name: "King Crab", Category: crab},
		{ID: 3, Name: "Tuna", Category: fish},
	}
	fb := newFakeBackend(t)
	fb.mux.HandleFunc("GET /products/products/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(all)
	})
	svc := services.NewCatalogService(fb.client())

	got, err := svc.ProductsBySlug(context.Background(), "fish")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fish products, got %d", len(got))
	}
	for _, p := range got {
		if p.Category.Slug != "fish" {
			t.Fatalf("product %q leaked into fish listing", p.Name)
		}
	}

	empty, err := svc.ProductsBySlug(context.Background(), "prawns")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty prawns listing, got %d (err=%v)", len(empty), err)
	}
}

func TestCategoriesFallBackOnErrorAndOnEmpty(t *testing.T) {
	// Transport failure.
	svc := services.NewCatalogService(newDeadClient())
	cats, err := svc.Categories(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if len(cats) != 4 || cats[0].Slug != "fish" || cats[3].Slug != "prawns" {
		t.Fatalf("unexpected fallback categories: %+v", cats)
	}

	// Healthy backend with an empty catalog degrades the same way.
	fb := newFakeBackend(t)
	fb.mux.HandleFunc("GET /products/categories/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Category{})
	})
	svc = services.NewCatalogService(fb.client())
	cats, err = svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on empty list: %v", err)
	}
	if len(cats) != 4 {
		t.Fatalf("expected demo categories for empty catalog, got %d", len(cats))
	}
}

func TestCategoryBySlug(t *testing.T) {
	fb := newFakeBackend(t)
	fb.mux.HandleFunc("GET /products/categories/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Category{
			{ID: 1, Name: "Fish", Slug: "fish"},
			{ID: 2, Name: "Squid", Slug: "squid"},
		})
	})
	svc := services.NewCatalogService(fb.client())

	cat, ok := svc.CategoryBySlug(context.Background(), "squid")
	if !ok || cat.ID != 2 {
		t.Fatalf("CategoryBySlug = %+v ok=%v", cat, ok)
	}
	if _, ok := svc.CategoryBySlug(context.Background(), "lobster"); ok {
		t.Fatal("unknown slug must not resolve")
	}
}
