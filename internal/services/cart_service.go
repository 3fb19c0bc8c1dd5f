package services

import (
	"context"
	"errors"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/domain"
)

var (
	// ErrQuantityFloor means a stepper move would take a line below 1; the
	// request is rejected locally, no call is made.
	ErrQuantityFloor  = errors.New("quantity cannot go below 1")
	ErrNotInCart      = errors.New("product not in cart")
	ErrUnknownProduct = errors.New("product not found")
)

type CartService struct {
	API *api.Client
}

func NewCartService(c *api.Client) *CartService { return &CartService{API: c} }

type CartView struct {
	Items    []domain.CartItem
	Total    domain.Money
	Fallback bool
}

// View fetches the cart and reconciles the session mirror. On fetch failure
// it returns the demo fallback line together with the error; the mirror is
// left untouched so a later successful fetch starts from server truth.
func (s *CartService) View(ctx context.Context, store *cache.Store) (CartView, error) {
	c, err := s.API.GetCart(ctx)
	if err != nil {
		return FallbackCart(), err
	}
	store.ReconcileCart(c)
	return CartView{Items: store.CartItems(), Total: store.Total()}, nil
}

// Add puts one unit of the product into the cart (fresh lines start at 1;
// an existing line is bumped by 1, since the backend treats quantity as a
// delta).
func (s *CartService) Add(ctx context.Context, store *cache.Store, p domain.Product) error {
	if err := s.API.AddCartItem(ctx, p.ID, 1); err != nil {
		return err
	}
	store.ApplyCartAdd(p, 1)
	return nil
}

// Step moves an existing line's quantity by delta through the add endpoint.
// Steps below 1 are refused before any network call.
func (s *CartService) Step(ctx context.Context, store *cache.Store, productID int64, delta int) error {
	qty := store.CartQuantity(productID)
	if qty == 0 {
		return ErrNotInCart
	}
	if qty+delta < 1 {
		return ErrQuantityFloor
	}
	if err := s.API.AddCartItem(ctx, productID, delta); err != nil {
		return err
	}
	for _, it := range store.CartItems() {
		if it.Product.ID == productID {
			store.ApplyCartAdd(it.Product, delta)
			break
		}
	}
	return nil
}

// Remove drops the line server-side, then mirrors the removal locally:
// total goes down by price x quantity and the line disappears. No re-fetch.
func (s *CartService) Remove(ctx context.Context, store *cache.Store, productID int64) error {
	if err := s.API.RemoveCartItem(ctx, productID); err != nil {
		return err
	}
	store.ApplyCartRemove(productID)
	return nil
}

// Toggle adds one unit when the product is not in the local mirror and
// removes the line when it is.
func (s *CartService) Toggle(ctx context.Context, store *cache.Store, p domain.Product) (added bool, err error) {
	if store.InCart(p.ID) {
		return false, s.Remove(ctx, store, p.ID)
	}
	return true, s.Add(ctx, store, p)
}

// ResolveProduct finds a product by id: the session mirrors first, then a
// catalog scan.
func (s *CartService) ResolveProduct(ctx context.Context, store *cache.Store, id int64) (domain.Product, error) {
	for _, it := range store.CartItems() {
		if it.Product.ID == id {
			return it.Product, nil
		}
	}
	for _, p := range store.WishlistProducts() {
		if p.ID == id {
			return p, nil
		}
	}
	all, err := s.API.ListProducts(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrUnknownProduct
}

// FallbackCart is the single demo line shown when the cart fetch fails:
// Salmon, qty 2 at 200, total 400.
func FallbackCart() CartView {
	salmon := domain.Product{ID: 1, Name: "Salmon", Price: 200}
	return CartView{
		Items:    []domain.CartItem{{Product: salmon, Quantity: 2}},
		Total:    400,
		Fallback: true,
	}
}
