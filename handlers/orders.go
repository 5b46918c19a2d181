package handlers

import (
	"errors"
	"net/http"

	"foodexpress/ledger"
	"foodexpress/middleware"
	"foodexpress/statemachine"

	"github.com/gin-gonic/gin"
)

// Checkout freezes the cart into a new order
func Checkout(c *gin.Context) {
	s := middleware.GetSession(c)

	order, err := s.Checkout()
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Your cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Order placed successfully",
		"order":         order,
		"total_display": order.TotalDisplay(),
		"status_label":  statemachine.StatusLabel(order.Status),
		"snapshot":      s.Snapshot(),
	})
}

// ListOrders returns the session's placed orders, oldest first
func ListOrders(c *gin.Context) {
	orders := middleware.GetSession(c).Snapshot().Orders

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"id":              o.ID,
			"items":           o.Items,
			"total":           o.Total,
			"total_display":   o.TotalDisplay(),
			"status":          o.Status,
			"status_label":    statemachine.StatusLabel(o.Status),
			"created_at":      o.CreatedAt,
			"restaurant_name": o.RestaurantName,
		})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(out), "orders": out})
}
