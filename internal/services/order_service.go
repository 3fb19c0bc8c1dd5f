package services

import (
	"context"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/domain"
)

type OrderService struct {
	API *api.Client
}

func NewOrderService(c *api.Client) *OrderService { return &OrderService{API: c} }

// Checkout turns the server-side cart into an order and, on success, clears
// the local cart mirror to match the now-empty cart.
func (s *OrderService) Checkout(ctx context.Context, store *cache.Store) (domain.Order, error) {
	order, err := s.API.Checkout(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	store.ClearCart()
	return order, nil
}

func (s *OrderService) History(ctx context.Context) ([]domain.Order, error) {
	return s.API.ListOrders(ctx)
}
