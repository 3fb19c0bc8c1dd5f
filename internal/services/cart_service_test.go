package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/domain"
	"seastore/internal/services"
)

// fakeBackend is a minimal stand-in for the remote REST API.
type fakeBackend struct {
	mux      *http.ServeMux
	srv      *httptest.Server
	addCalls atomic.Int64
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{mux: http.NewServeMux()}
	fb.srv = httptest.NewServer(fb.mux)
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) client() *api.Client { return api.New(fb.srv.URL) }

func (fb *fakeBackend) serveCart(cart domain.Cart) {
	fb.mux.HandleFunc("GET /orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(cart)
	})
	fb.mux.HandleFunc("POST /orders/cart/add-item/", func(w http.ResponseWriter, r *http.Request) {
		fb.addCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Item added to cart"})
	})
	fb.mux.HandleFunc("POST /orders/cart/remove-item/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Item removed from cart"})
	})
}

func salmon() domain.Product {
	return domain.Product{ID: 3, Name: "Salmon", Price: 200, Weight: "1 kg", Stock: 5}
}

func TestCartViewReconcilesServerTruth(t *testing.T) {
	fb := newFakeBackend(t)
	fb.serveCart(domain.Cart{
		Items:      []domain.CartItem{{Product: salmon(), Quantity: 2}},
		TotalPrice: 400,
	})
	svc := services.NewCartService(fb.client())
	store := cache.NewStore()

	cv, err := svc.View(context.Background(), store)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if cv.Fallback {
		t.Fatal("fallback set on a healthy fetch")
	}
	if len(cv.Items) != 1 || cv.Items[0].Quantity != 2 || float64(cv.Total) != 400 {
		t.Fatalf("unexpected view: %+v", cv)
	}
	if !store.InCart(3) {
		t.Fatal("mirror not reconciled")
	}
}

// A dead backend yields the single demo line and leaves the mirror alone.
func TestCartViewFallbackOnFetchFailure(t *testing.T) {
	svc := services.NewCartService(api.New("http://127.0.0.1:1")) // nothing listens here
	store := cache.NewStore()

	cv, err := svc.View(context.Background(), store)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !cv.Fallback {
		t.Fatal("expected fallback view")
	}
	if len(cv.Items) != 1 {
		t.Fatalf("expected 1 demo line, got %d", len(cv.Items))
	}
	it := cv.Items[0]
	if it.Product.Name != "Salmon" || it.Quantity != 2 || float64(it.Product.Price) != 200 || float64(cv.Total) != 400 {
		t.Fatalf("demo line mismatch: %+v total=%v", it, cv.Total)
	}
	if len(store.CartItems()) != 0 {
		t.Fatal("fallback must not touch the mirror")
	}
}

func TestCartStepRejectsBelowOneWithoutNetworkCall(t *testing.T) {
	fb := newFakeBackend(t)
	fb.serveCart(domain.Cart{
		Items:      []domain.CartItem{{Product: salmon(), Quantity: 1}},
		TotalPrice: 200,
	})
	svc := services.NewCartService(fb.client())
	store := cache.NewStore()
	if _, err := svc.View(context.Background(), store); err != nil {
		t.Fatalf("view: %v", err)
	}

	before := fb.addCalls.Load()
	err := svc.Step(context.Background(), store, 3, -1)
	if err != services.ErrQuantityFloor {
		t.Fatalf("err = %v, want ErrQuantityFloor", err)
	}
	if fb.addCalls.Load() != before {
		t.Fatal("floor rejection must not reach the backend")
	}
	if store.CartQuantity(3) != 1 {
		t.Fatal("local quantity changed on rejected step")
	}
}

func TestCartStepSendsDeltaAndUpdatesMirror(t *testing.T) {
	fb := newFakeBackend(t)
	fb.serveCart(domain.Cart{
		Items:      []domain.CartItem{{Product: salmon(), Quantity: 2}},
		TotalPrice: 400,
	})
	svc := services.NewCartService(fb.client())
	store := cache.NewStore()
	if _, err := svc.View(context.Background(), store); err != nil {
		t.Fatalf("view: %v", err)
	}

	if err := svc.Step(context.Background(), store, 3, 1); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := store.CartQuantity(3); got != 3 {
		t.Fatalf("qty = %d, want 3", got)
	}
	if got := float64(store.Total()); got != 600 {
		t.Fatalf("total = %v, want 600", got)
	}
	if fb.addCalls.Load() != 1 {
		t.Fatalf("expected exactly one add call, got %d", fb.addCalls.Load())
	}
}

func TestCartRemoveDecrementsTotalByLineSubtotal(t *testing.T) {
	fb := newFakeBackend(t)
	crab := domain.Product{ID: 4, Name: "Crab", Price: 350}
	fb.serveCart(domain.Cart{
		Items: []domain.CartItem{
			{Product: salmon(), Quantity: 2},
			{Product: crab, Quantity: 3},
		},
		TotalPrice: 1450,
	})
	svc := services.NewCartService(fb.client())
	store := cache.NewStore()
	if _, err := svc.View(context.Background(), store); err != nil {
		t.Fatalf("view: %v", err)
	}

	if err := svc.Remove(context.Background(), store, 4); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// 1450 - 350x3
	if got := float64(store.Total()); got != 400 {
		t.Fatalf("total = %v, want 400", got)
	}
	if store.InCart(4) {
		t.Fatal("removed line still mirrored")
	}
}

func TestCartRemoveFailureLeavesMirrorUntouched(t *testing.T) {
	fb := newFakeBackend(t)
	fb.mux.HandleFunc("GET /orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Cart{
			Items:      []domain.CartItem{{Product: salmon(), Quantity: 2}},
			TotalPrice: 400,
		})
	})
	fb.mux.HandleFunc("POST /orders/cart/remove-item/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"Item not in cart"}`, http.StatusNotFound)
	})
	svc := services.NewCartService(fb.client())
	store := cache.NewStore()
	if _, err := svc.View(context.Background(), store); err != nil {
		t.Fatalf("view: %v", err)
	}

	if err := svc.Remove(context.Background(), store, 3); err == nil {
		t.Fatal("expected backend error")
	}
	if !store.InCart(3) || float64(store.Total()) != 400 {
		t.Fatal("failed remove must leave last known server state")
	}
}
