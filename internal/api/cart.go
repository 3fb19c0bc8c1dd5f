package api

import (
	"context"

	"seastore/internal/domain"
)

func (c *Client) GetCart(ctx context.Context) (domain.Cart, error) {
	var out domain.Cart
	err := c.do(ctx, "GET", "orders/cart/", nil, &out)
	return out, err
}

// AddCartItem sends a quantity delta: the backend bumps an existing line by
// quantity and creates new lines at quantity. Negative deltas step a line
// down through the same endpoint.
func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"product_id": productID, "quantity": quantity}
	return c.do(ctx, "POST", "orders/cart/add-item/", body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, productID int64) error {
	body := map[string]any{"product_id": productID}
	return c.do(ctx, "POST", "orders/cart/remove-item/", body, nil)
}

// Checkout converts the server-side cart into an order and empties it.
func (c *Client) Checkout(ctx context.Context) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, "POST", "orders/cart/checkout/", map[string]any{}, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, "GET", "orders/orders/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
