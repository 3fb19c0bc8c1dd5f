package api

import (
	"context"

	"seastore/internal/domain"
)

func (c *Client) GetWishlist(ctx context.Context) (domain.Wishlist, error) {
	var out domain.Wishlist
	err := c.do(ctx, "GET", "orders/wishlist/", nil, &out)
	return out, err
}

func (c *Client) AddWishlistItem(ctx context.Context, productID int64) error {
	body := map[string]any{"product_id": productID}
	return c.do(ctx, "POST", "orders/wishlist/add-item/", body, nil)
}

func (c *Client) RemoveWishlistItem(ctx context.Context, productID int64) error {
	body := map[string]any{"product_id": productID}
	return c.do(ctx, "POST", "orders/wishlist/remove-item/", body, nil)
}
