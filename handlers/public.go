package handlers

import (
	"net/http"

	"foodexpress/catalog"
	"foodexpress/models"
	"foodexpress/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns the catalog, optionally narrowed by search
// text and category (public)
func ListRestaurants(c *gin.Context) {
	query := c.Query("search")
	category := c.Query("category")
	if category == "" {
		category = catalog.CategoryAll
	}

	restaurants := catalog.FilterRestaurants(query, category)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"categories":  catalog.Categories(),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant
func GetRestaurant(c *gin.Context) {
	restaurant, err := catalog.GetRestaurant(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu shown for a restaurant (public). The demo
// dataset serves the same items for every restaurant.
func GetMenu(c *gin.Context) {
	restaurant, err := catalog.GetRestaurant(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	items := catalog.ListMenuItems()
	if c.Query("popular") == "true" {
		popular := items[:0]
		for _, item := range items {
			if item.Popular {
				popular = append(popular, item)
			}
		}
		items = popular
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// GetStateMachineInfo returns the navigation graph and the canned
// order-status progression for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var nav []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		nav = append(nav, gin.H{
			"from":          t.From,
			"to":            t.To,
			"requires_auth": t.RequiresAuth,
		})
	}

	var flow []gin.H
	for _, status := range statemachine.StatusFlow() {
		flow = append(flow, gin.H{
			"status":   status,
			"label":    statemachine.StatusLabel(status),
			"terminal": statemachine.IsTerminalStatus(status),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"navigation":  nav,
		"status_flow": flow,
		"description": "FoodExpress storefront page graph and order status progression. Orders stay at '" + string(models.StatusPreparing) + "'; the progression is display vocabulary only.",
	})
}
