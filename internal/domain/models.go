package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Money handles the backend's price encoding: DRF serializes decimals as
// strings ("200.00") while a few endpoints return plain numbers.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = Money(f)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(m), 'f', -1, 64)), nil
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Price    Money    `json:"price"`
	Weight   string   `json:"weight"` // display unit, e.g. "1 kg"
	Stock    int      `json:"stock"`
	IsActive bool     `json:"is_active"`
	Image    string   `json:"image"`
	Category Category `json:"category"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price x quantity for the line.
func (it CartItem) Subtotal() Money {
	return it.Product.Price * Money(it.Quantity)
}

type Cart struct {
	ID         int64      `json:"id"`
	Items      []CartItem `json:"items"`
	TotalPrice Money      `json:"total_price"`
}

type Wishlist struct {
	ID       int64     `json:"id"`
	Products []Product `json:"products"`
}

type OrderItem struct {
	ProductID   int64  `json:"product"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
}

type Order struct {
	ID         int64       `json:"id"`
	TotalPrice Money       `json:"total_price"`
	Status     string      `json:"status"` // pending | shipped | delivered | cancelled
	CreatedAt  string      `json:"created_at"`
	Items      []OrderItem `json:"items"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
