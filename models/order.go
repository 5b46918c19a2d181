package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a placed order
type OrderStatus string

const (
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// Order is a frozen snapshot of a cart at checkout time. Items are
// copied, not referenced, so later cart mutation cannot reach into a
// placed order. Status is fixed at creation; nothing in this process
// advances it.
type Order struct {
	ID             string          `json:"id"`
	Items          []CartItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Status         OrderStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	RestaurantName string          `json:"restaurant_name"`
}

// TotalDisplay renders the total with two-digit rounding.
func (o Order) TotalDisplay() string {
	return o.Total.StringFixed(2)
}
