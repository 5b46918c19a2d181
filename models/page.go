package models

// Page identifies a storefront screen.
type Page string

const (
	PageAuth       Page = "auth"
	PageHome       Page = "home"
	PageRestaurant Page = "restaurant"
	PageCart       Page = "cart"
	PageOrders     Page = "orders"
)
