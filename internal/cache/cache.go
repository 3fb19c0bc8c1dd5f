// Package cache holds the client-side mirror of server-owned cart and
// wishlist state. Pages read membership and totals from here instead of each
// keeping a private snapshot, so one mutation is visible to every view of
// the same session.
package cache

import (
	"sync"

	"seastore/internal/domain"
)

// Store mirrors one session's cart and wishlist. Reconcile* replaces local
// state with server truth after a fetch; Apply* runs after a mutation call
// succeeded (optimistic update follows the call, never precedes it, so a
// failed call leaves the mirror at the last known server state).
type Store struct {
	mu sync.RWMutex

	cartOrder []int64
	cart      map[int64]domain.CartItem
	total     domain.Money

	wishOrder []int64
	wish      map[int64]domain.Product
}

func NewStore() *Store {
	return &Store{
		cart: make(map[int64]domain.CartItem),
		wish: make(map[int64]domain.Product),
	}
}

func (s *Store) ReconcileCart(c domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOrder = s.cartOrder[:0]
	s.cart = make(map[int64]domain.CartItem, len(c.Items))
	for _, it := range c.Items {
		if it.Quantity < 1 {
			continue
		}
		s.cartOrder = append(s.cartOrder, it.Product.ID)
		s.cart[it.Product.ID] = it
	}
	s.total = c.TotalPrice
}

func (s *Store) ReconcileWishlist(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishOrder = s.wishOrder[:0]
	s.wish = make(map[int64]domain.Product, len(products))
	for _, p := range products {
		s.wishOrder = append(s.wishOrder, p.ID)
		s.wish[p.ID] = p
	}
}

// ApplyCartAdd bumps an existing line by delta or inserts a new line at
// quantity delta. The running total moves by the quantity actually applied
// after the floor clamp, so it stays the sum of line subtotals; there is no
// re-fetch, so server-side rounding stays invisible until the next
// reconcile.
func (s *Store) ApplyCartAdd(p domain.Product, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var applied int
	if it, ok := s.cart[p.ID]; ok {
		newQty := it.Quantity + delta
		if newQty < 1 {
			newQty = 1
		}
		applied = newQty - it.Quantity
		it.Quantity = newQty
		s.cart[p.ID] = it
	} else {
		if delta < 1 {
			delta = 1
		}
		applied = delta
		s.cartOrder = append(s.cartOrder, p.ID)
		s.cart[p.ID] = domain.CartItem{Product: p, Quantity: delta}
	}
	s.total += p.Price * domain.Money(applied)
}

// ApplyCartRemove drops the line and decrements the total by its subtotal.
func (s *Store) ApplyCartRemove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.cart[productID]
	if !ok {
		return
	}
	s.total -= it.Subtotal()
	delete(s.cart, productID)
	for i, id := range s.cartOrder {
		if id == productID {
			s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) ApplyWishlistAdd(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wish[p.ID]; ok {
		return
	}
	s.wishOrder = append(s.wishOrder, p.ID)
	s.wish[p.ID] = p
}

func (s *Store) ApplyWishlistRemove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wish[productID]; !ok {
		return
	}
	delete(s.wish, productID)
	for i, id := range s.wishOrder {
		if id == productID {
			s.wishOrder = append(s.wishOrder[:i], s.wishOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) InCart(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cart[productID]
	return ok
}

func (s *Store) InWishlist(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.wish[productID]
	return ok
}

func (s *Store) CartQuantity(productID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart[productID].Quantity
}

func (s *Store) CartItems() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		out = append(out, s.cart[id])
	}
	return out
}

func (s *Store) WishlistProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.wishOrder))
	for _, id := range s.wishOrder {
		out = append(out, s.wish[id])
	}
	return out
}

func (s *Store) Total() domain.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOrder = s.cartOrder[:0]
	s.cart = make(map[int64]domain.CartItem)
	s.total = 0
}
