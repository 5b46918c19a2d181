// Package ledger implements the append-only order ledger. Orders are
// immutable once placed: no update, no cancel, no status progression.
package ledger

import (
	"errors"
	"time"

	"foodexpress/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = errors.New("cannot place an order from an empty cart")

type Ledger struct {
	orders []models.Order
}

func New() *Ledger {
	return &Ledger{}
}

// Place appends a new order built from a cart snapshot. The items are
// copied so later cart mutation cannot alter the placed order. Total
// is the item subtotal plus the delivery fee; status always starts at
// preparing.
func (l *Ledger) Place(items []models.CartItem, deliveryFee decimal.Decimal, restaurantName string) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	subtotal := decimal.Zero
	for _, item := range snapshot {
		subtotal = subtotal.Add(item.LineTotal())
	}

	order := models.Order{
		ID:             uuid.NewString(),
		Items:          snapshot,
		Total:          subtotal.Add(deliveryFee),
		Status:         models.StatusPreparing,
		CreatedAt:      time.Now(),
		RestaurantName: restaurantName,
	}
	l.orders = append(l.orders, order)
	return order, nil
}

// Orders returns the placed orders in creation order, oldest first.
// Each order's item slice is copied so callers cannot reach back into
// the ledger.
func (l *Ledger) Orders() []models.Order {
	out := make([]models.Order, len(l.orders))
	for i, o := range l.orders {
		items := make([]models.CartItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		out[i] = o
	}
	return out
}

// Len is the number of placed orders.
func (l *Ledger) Len() int {
	return len(l.orders)
}
