package models

import "github.com/shopspring/decimal"

// CartItem is a cart line. ID equals the menu item ID; at most one
// line exists per ID, and a line whose quantity reaches zero is
// removed rather than kept around.
type CartItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"` // snapshot price at time of adding
	Quantity     int             `json:"quantity"`
	Image        string          `json:"image"`
	RestaurantID string          `json:"restaurant_id"`
}

// LineTotal returns price * quantity for this line.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
