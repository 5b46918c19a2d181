package handlers

import (
	"errors"
	"net/http"

	"foodexpress/middleware"
	"foodexpress/session"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type SetQuantityRequest struct {
	// Pointer so that an explicit zero (remove the line) is
	// distinguishable from a missing field.
	Quantity *int `json:"quantity" binding:"required"`
}

// AddToCart adds one unit of a menu item to the session's cart
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.GetSession(c)
	if err := s.AddToCart(req.ItemID); err != nil {
		if errors.Is(err, session.ErrNoRestaurantSelected) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Select a restaurant before adding items"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": s.Snapshot()})
}

// SetQuantity updates a cart line; zero or a negative number removes it
func SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.GetSession(c)
	s.SetQuantity(c.Param("itemId"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"snapshot": s.Snapshot()})
}

// GetCart returns the cart contents with the derived subtotal
func GetCart(c *gin.Context) {
	snap := middleware.GetSession(c).Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"cart":             snap.Cart,
		"cart_count":       snap.CartCount,
		"subtotal":         snap.Subtotal,
		"subtotal_display": snap.SubtotalDisplay,
		"can_checkout":     snap.CanCheckout,
	})
}
