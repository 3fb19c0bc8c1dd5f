package services

import (
	"context"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/domain"
)

type WishlistService struct {
	API *api.Client
}

func NewWishlistService(c *api.Client) *WishlistService { return &WishlistService{API: c} }

// List fetches the wishlist and reconciles the session mirror. Fetch
// failure yields an empty list plus the error; callers render the page
// empty rather than stale.
func (s *WishlistService) List(ctx context.Context, store *cache.Store) ([]domain.Product, error) {
	w, err := s.API.GetWishlist(ctx)
	if err != nil {
		return nil, err
	}
	store.ReconcileWishlist(w.Products)
	return store.WishlistProducts(), nil
}

// Toggle flips membership by current local state: in the set means remove,
// out means add. The id set moves only after the call succeeds, so toggling
// twice always lands back where it started.
func (s *WishlistService) Toggle(ctx context.Context, store *cache.Store, p domain.Product) (added bool, err error) {
	if store.InWishlist(p.ID) {
		if err := s.API.RemoveWishlistItem(ctx, p.ID); err != nil {
			return false, err
		}
		store.ApplyWishlistRemove(p.ID)
		return false, nil
	}
	if err := s.API.AddWishlistItem(ctx, p.ID); err != nil {
		return false, err
	}
	store.ApplyWishlistAdd(p)
	return true, nil
}

func (s *WishlistService) Remove(ctx context.Context, store *cache.Store, productID int64) error {
	if err := s.API.RemoveWishlistItem(ctx, productID); err != nil {
		return err
	}
	store.ApplyWishlistRemove(productID)
	return nil
}
