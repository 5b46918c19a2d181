// Package catalog is the read-only store of restaurants and menu
// items. All reads are derived from the seeded in-memory database;
// nothing here mutates.
package catalog

import (
	"foodexpress/config"
	"foodexpress/models"
)

// CategoryAll is the filter label that matches every cuisine.
const CategoryAll = "All"

var categories = []string{CategoryAll, "Pizza", "Burgers", "Healthy", "Desserts", "Italian", "Fast Food"}

// Categories returns the fixed category filter labels, "All" first.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ListRestaurants returns every restaurant in seed order.
func ListRestaurants() []models.Restaurant {
	var restaurants []models.Restaurant
	config.DB.Order("rowid").Find(&restaurants)
	return restaurants
}

// GetRestaurant looks up a single restaurant by ID.
func GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// ListMenuItems returns every menu item in seed order. The demo
// dataset renders the same menu regardless of restaurant.
func ListMenuItems() []models.MenuItem {
	var items []models.MenuItem
	config.DB.Order("rowid").Find(&items)
	return items
}

// GetMenuItem looks up a single menu item by ID.
func GetMenuItem(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FilterRestaurants narrows the catalog by category and search query.
// A restaurant matches when the category is "All" or equals its
// cuisine, and the query is empty or a case-insensitive substring of
// its name or cuisine. Result keeps seed order.
func FilterRestaurants(query, category string) []models.Restaurant {
	db := config.DB.Model(&models.Restaurant{})
	if category != "" && category != CategoryAll {
		db = db.Where("cuisine = ?", category)
	}
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("name LIKE ? OR cuisine LIKE ?", pattern, pattern)
	}
	var restaurants []models.Restaurant
	db.Order("rowid").Find(&restaurants)
	return restaurants
}
