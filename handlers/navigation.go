package handlers

import (
	"net/http"

	"foodexpress/middleware"
	"foodexpress/models"

	"github.com/gin-gonic/gin"
)

type NavigateRequest struct {
	Page models.Page `json:"page" binding:"required"`
}

type SelectRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
}

type SearchRequest struct {
	// Empty query is legal: it clears the search.
	Query string `json:"query"`
}

type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// GetSnapshot returns the full view state for the session
func GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"snapshot": middleware.GetSession(c).Snapshot()})
}

// Navigate moves the session to another page
func Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.GetSession(c)
	if err := s.Navigate(req.Page); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": s.Snapshot()})
}

// SelectRestaurant picks a restaurant and lands on its page
func SelectRestaurant(c *gin.Context) {
	var req SelectRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.GetSession(c)
	if err := s.SelectRestaurant(req.RestaurantID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": s.Snapshot()})
}

// SetSearchQuery updates the home page search text
func SetSearchQuery(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.GetSession(c)
	s.SetSearchQuery(req.Query)
	c.JSON(http.StatusOK, gin.H{"snapshot": s.Snapshot()})
}

// SetCategory updates the category filter
func SetCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := middleware.GetSession(c)
	s.SetCategory(req.Category)
	c.JSON(http.StatusOK, gin.H{"snapshot": s.Snapshot()})
}
