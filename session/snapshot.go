package session

import (
	"foodexpress/catalog"
	"foodexpress/models"

	"github.com/shopspring/decimal"
)

// Snapshot is the read-only view handed to the rendering surface
// after each intent. Everything in it is a copy; mutating a snapshot
// never touches session state.
type Snapshot struct {
	Page               models.Page         `json:"page"`
	Authenticated      bool                `json:"authenticated"`
	UserName           string              `json:"user_name"`
	SelectedRestaurant *models.Restaurant  `json:"selected_restaurant"`
	SearchQuery        string              `json:"search_query"`
	Category           string              `json:"category"`
	Categories         []string            `json:"categories"`
	Restaurants        []models.Restaurant `json:"restaurants"`
	MenuItems          []models.MenuItem   `json:"menu_items"`
	Cart               []models.CartItem   `json:"cart"`
	CartCount          int                 `json:"cart_count"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	SubtotalDisplay    string              `json:"subtotal_display"`
	CanCheckout        bool                `json:"can_checkout"`
	Orders             []models.Order      `json:"orders"`
}

// Snapshot assembles the current view state: page and selection,
// catalog filtered by the live search/category, cart with its derived
// subtotal, and the placed orders oldest first.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var selected *models.Restaurant
	if s.selectedRestaurant != nil {
		r := *s.selectedRestaurant
		selected = &r
	}

	subtotal := s.cart.Subtotal()
	return Snapshot{
		Page:               s.page,
		Authenticated:      s.authenticated,
		UserName:           s.user.Name,
		SelectedRestaurant: selected,
		SearchQuery:        s.searchQuery,
		Category:           s.category,
		Categories:         catalog.Categories(),
		Restaurants:        catalog.FilterRestaurants(s.searchQuery, s.category),
		MenuItems:          catalog.ListMenuItems(),
		Cart:               s.cart.Items(),
		CartCount:          s.cart.Count(),
		Subtotal:           subtotal,
		SubtotalDisplay:    subtotal.StringFixed(2),
		CanCheckout:        s.cart.Len() > 0,
		Orders:             s.orders.Orders(),
	}
}
