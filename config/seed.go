package config

import (
	"log"

	"foodexpress/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var seedRestaurants = []models.Restaurant{
	{
		ID:           "1",
		Name:         "Bella Italia",
		Image:        "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:       4.8,
		DeliveryTime: "25-35 min",
		DeliveryFee:  price("0"),
		Cuisine:      "Italian",
		Featured:     true,
	},
	{
		ID:           "2",
		Name:         "Burger Palace",
		Image:        "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:       4.6,
		DeliveryTime: "20-30 min",
		DeliveryFee:  price("2.99"),
		Cuisine:      "Fast Food",
		Featured:     true,
	},
	{
		ID:           "3",
		Name:         "Green Garden",
		Image:        "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:       4.9,
		DeliveryTime: "30-40 min",
		DeliveryFee:  price("0"),
		Cuisine:      "Healthy",
		Featured:     false,
	},
	{
		ID:           "4",
		Name:         "Sweet Dreams",
		Image:        "https://images.pexels.com/photos/1126359/pexels-photo-1126359.jpeg?auto=compress&cs=tinysrgb&w=400",
		Rating:       4.7,
		DeliveryTime: "15-25 min",
		DeliveryFee:  price("1.99"),
		Cuisine:      "Desserts",
		Featured:     true,
	},
}

var seedMenuItems = []models.MenuItem{
	{
		ID:          "1",
		Name:        "Margherita Pizza",
		Description: "Fresh tomatoes, mozzarella, basil, and olive oil",
		Price:       price("14.99"),
		Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Pizza",
		Popular:     true,
	},
	{
		ID:          "2",
		Name:        "Chicken Alfredo",
		Description: "Grilled chicken with creamy alfredo sauce and fettuccine",
		Price:       price("18.99"),
		Image:       "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Pasta",
		Popular:     false,
	},
	{
		ID:          "3",
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce, parmesan, croutons, and caesar dressing",
		Price:       price("12.99"),
		Image:       "https://images.pexels.com/photos/1059905/pexels-photo-1059905.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Salads",
		Popular:     true,
	},
	{
		ID:          "4",
		Name:        "Tiramisu",
		Description: "Traditional Italian dessert with coffee and mascarpone",
		Price:       price("8.99"),
		Image:       "https://images.pexels.com/photos/6786785/pexels-photo-6786785.jpeg?auto=compress&cs=tinysrgb&w=400",
		Category:    "Desserts",
		Popular:     false,
	},
}

// seedCatalog loads the hard-coded storefront catalog. Insertion order
// matters: listing endpoints return restaurants in this order.
func seedCatalog(db *gorm.DB) {
	for _, r := range seedRestaurants {
		if err := db.Create(&r).Error; err != nil {
			log.Fatal("Failed to seed restaurant:", err)
		}
	}
	for _, m := range seedMenuItems {
		if err := db.Create(&m).Error; err != nil {
			log.Fatal("Failed to seed menu item:", err)
		}
	}
}
