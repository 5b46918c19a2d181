package routes

import (
	"foodexpress/handlers"
	"foodexpress/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Demo gate: any non-empty credentials pass
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog browsing (no session needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)

		// Navigation graph + status taxonomy (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Session-scoped storefront intents ──────────────────────────
	store := r.Group("/api")
	store.Use(middleware.SessionRequired())
	{
		store.GET("/profile", handlers.GetProfile)

		// View state
		store.GET("/session/snapshot", handlers.GetSnapshot)
		store.POST("/session/navigate", handlers.Navigate)
		store.POST("/session/restaurant", handlers.SelectRestaurant)
		store.POST("/session/search", handlers.SetSearchQuery)
		store.POST("/session/category", handlers.SetCategory)

		// Cart
		store.GET("/cart", handlers.GetCart)
		store.POST("/cart/items", handlers.AddToCart)
		store.PUT("/cart/items/:itemId", handlers.SetQuantity)

		// Orders
		store.POST("/orders", handlers.Checkout)
		store.GET("/orders", handlers.ListOrders)
	}
}
