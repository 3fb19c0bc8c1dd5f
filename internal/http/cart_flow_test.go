package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/config"
	"seastore/internal/domain"
	"seastore/internal/http/handlers"
	"seastore/internal/session"
)

type storeBackend struct {
	srv      *httptest.Server
	mux      *http.ServeMux
	cart     domain.Cart
	wishlist []domain.Product
	addCalls atomic.Int64
}

func newStoreBackend(t *testing.T) *storeBackend {
	t.Helper()
	b := &storeBackend{mux: http.NewServeMux()}
	b.mux.HandleFunc("GET /orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(b.cart)
	})
	b.mux.HandleFunc("POST /orders/cart/add-item/", func(w http.ResponseWriter, r *http.Request) {
		b.addCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Item added to cart"})
	})
	b.mux.HandleFunc("POST /orders/cart/remove-item/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Item removed from cart"})
	})
	b.mux.HandleFunc("GET /orders/wishlist/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Wishlist{Products: b.wishlist})
	})
	b.mux.HandleFunc("POST /orders/wishlist/add-item/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	b.mux.HandleFunc("POST /orders/wishlist/remove-item/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	b.srv = httptest.NewServer(b.mux)
	t.Cleanup(b.srv.Close)
	return b
}

func newStoreApp(t *testing.T, backendURL string) (*fiber.App, *cache.Registry) {
	t.Helper()
	sessions, err := session.Open(":memory:")
	if err != nil {
		t.Fatalf("open sessions: %v", err)
	}
	caches := cache.NewRegistry()
	deps := handlers.NewDeps(config.Config{AdminEmail: "maxanmax@gmail.com"}, api.New(backendURL), sessions, caches)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/qty", deps.CartHandler.Step)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.CategoryHandler.ToggleWishlist)
	return app, caches
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func post(t *testing.T, app *fiber.App, path, form string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestCartPageRendersServerCart(t *testing.T) {
	b := newStoreBackend(t)
	b.cart = domain.Cart{
		Items: []domain.CartItem{
			{Product: domain.Product{ID: 3, Name: "Salmon", Price: 200}, Quantity: 2},
		},
		TotalPrice: 400,
	}
	app, _ := newStoreApp(t, b.srv.URL)

	resp, body := get(t, app, "/cart")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Salmon") || !strings.Contains(body, "400") {
		t.Fatalf("cart page missing line or total:\n%s", body)
	}
}

// Backend down: the page still renders, showing the demo line.
func TestCartPageFallbackOnBackendOutage(t *testing.T) {
	app, _ := newStoreApp(t, "http://127.0.0.1:1")

	resp, body := get(t, app, "/cart")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Salmon") || !strings.Contains(body, "400") {
		t.Fatalf("fallback line not rendered:\n%s", body)
	}
}

func TestCartStepperFloorNeverReachesBackend(t *testing.T) {
	b := newStoreBackend(t)
	b.cart = domain.Cart{
		Items:      []domain.CartItem{{Product: domain.Product{ID: 3, Name: "Salmon", Price: 200}, Quantity: 1}},
		TotalPrice: 200,
	}
	app, _ := newStoreApp(t, b.srv.URL)

	// Warm the session mirror, keeping the sid.
	resp, _ := get(t, app, "/cart")
	sid := cookieValue(resp, "sid")
	if sid == "" {
		t.Fatal("sid missing")
	}
	sidCookie := &http.Cookie{Name: "sid", Value: sid}

	before := b.addCalls.Load()
	respStep := post(t, app, "/cart/qty", "product_id=3&delta=-1", sidCookie)
	if respStep.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", respStep.StatusCode)
	}
	if b.addCalls.Load() != before {
		t.Fatal("below-1 step must not call the backend")
	}

	// Upward step goes through.
	post(t, app, "/cart/qty", "product_id=3&delta=1", sidCookie)
	if b.addCalls.Load() != before+1 {
		t.Fatalf("expected one add call, got %d", b.addCalls.Load()-before)
	}
}

func TestCartRemoveUpdatesSessionMirror(t *testing.T) {
	b := newStoreBackend(t)
	b.cart = domain.Cart{
		Items: []domain.CartItem{
			{Product: domain.Product{ID: 3, Name: "Salmon", Price: 200}, Quantity: 2},
			{Product: domain.Product{ID: 4, Name: "Crab", Price: 350}, Quantity: 1},
		},
		TotalPrice: 750,
	}
	app, caches := newStoreApp(t, b.srv.URL)

	resp, _ := get(t, app, "/cart")
	sid := cookieValue(resp, "sid")
	sidCookie := &http.Cookie{Name: "sid", Value: sid}

	respRm := post(t, app, "/cart/remove", "product_id=3", sidCookie)
	if respRm.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", respRm.StatusCode)
	}
	store := caches.For(sid)
	if store.InCart(3) {
		t.Fatal("removed line still in mirror")
	}
	if got := float64(store.Total()); got != 350 {
		t.Fatalf("total = %v, want 350", got)
	}
}

func TestWishlistPageSharesCartMembership(t *testing.T) {
	b := newStoreBackend(t)
	squid := domain.Product{ID: 9, Name: "Squid", Price: 150, Stock: 4, Weight: "1 kg"}
	b.wishlist = []domain.Product{squid}
	b.cart = domain.Cart{
		Items:      []domain.CartItem{{Product: squid, Quantity: 1}},
		TotalPrice: 150,
	}
	app, _ := newStoreApp(t, b.srv.URL)

	resp, body := get(t, app, "/wishlist")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Squid") {
		t.Fatalf("wishlist page missing product:\n%s", body)
	}
	// In the cart already, so the cart button reads Remove.
	if !strings.Contains(body, "Remove") {
		t.Fatalf("cart membership not reflected:\n%s", body)
	}
}
