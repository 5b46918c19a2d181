// Package cart implements the cart engine: an insertion-ordered set
// of lines keyed by menu item ID. The engine is not safe for
// concurrent use on its own; the owning session serializes intents.
package cart

import (
	"foodexpress/models"

	"github.com/shopspring/decimal"
)

type Cart struct {
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add merges a menu item into the cart: an existing line with the
// same ID gains one unit (price and restaurant untouched), otherwise
// a new line with quantity 1 is appended. Always succeeds.
func (c *Cart) Add(item models.MenuItem, restaurantID string) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Quantity:     1,
		Image:        item.Image,
		RestaurantID: restaurantID,
	})
}

// SetQuantity sets a line's quantity. A quantity of zero or less
// removes the line; setting an absent ID is a no-op. No upper bound.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return
	}
}

// Clear empties the cart. Invoked on checkout.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is the sum of price*quantity over all lines, computed
// fresh on every call rather than cached.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Count is the total number of units across all lines, shown on the
// cart badge.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}
