// Package session ties one user's storefront state together: their
// cart, their order ledger, and their navigation state. A session is
// the "single dispatch queue" of the storefront — every intent runs
// under the session mutex, atomically and in arrival order.
package session

import (
	"errors"
	"sync"

	"foodexpress/cart"
	"foodexpress/catalog"
	"foodexpress/ledger"
	"foodexpress/models"
	"foodexpress/statemachine"

	"github.com/shopspring/decimal"
)

// checkoutDeliveryFee is the flat fee charged at checkout, regardless
// of the per-restaurant fee advertised on the home page. The mismatch
// is inherited demo behavior, kept as-is.
var checkoutDeliveryFee = decimal.RequireFromString("2.99")

// fallbackRestaurantName labels an order placed with no selection.
const fallbackRestaurantName = "Restaurant"

var (
	ErrNoRestaurantSelected = errors.New("no restaurant selected")
	ErrNotSignedIn          = errors.New("sign in first")
)

// Session owns one cart, one order ledger, and the navigation state.
// No other component mutates these; the HTTP surface only calls the
// transition methods below and reads snapshots.
type Session struct {
	ID string

	mu                 sync.Mutex
	user               models.User
	authenticated      bool
	page               models.Page
	selectedRestaurant *models.Restaurant
	searchQuery        string
	category           string
	cart               *cart.Cart
	orders             *ledger.Ledger
}

func New() *Session {
	return &Session{
		page:     models.PageAuth,
		category: catalog.CategoryAll,
		cart:     cart.New(),
		orders:   ledger.New(),
	}
}

// Login flips the demo gate: the caller has already checked that the
// credentials are non-empty, nothing is verified here. Lands on home.
func (s *Session) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.authenticated = true
	s.page = models.PageHome
}

// Navigate moves to another page if the navigation graph allows it.
// Moving to the restaurant page with no selection is legal; the view
// is expected to render nothing for it.
func (s *Session) Navigate(page models.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := statemachine.CanNavigate(s.page, page, s.authenticated); err != nil {
		return err
	}
	s.page = page
	return nil
}

// SelectRestaurant picks a restaurant and lands on its page.
func (s *Session) SelectRestaurant(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return ErrNotSignedIn
	}
	restaurant, err := catalog.GetRestaurant(id)
	if err != nil {
		return err
	}
	s.selectedRestaurant = restaurant
	s.page = models.PageRestaurant
	return nil
}

// SetSearchQuery updates the home page search text. Page unchanged.
func (s *Session) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetCategory updates the category filter. Page unchanged.
func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

// AddToCart adds one unit of a menu item to the cart, tagged with the
// currently selected restaurant.
func (s *Session) AddToCart(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedRestaurant == nil {
		return ErrNoRestaurantSelected
	}
	item, err := catalog.GetMenuItem(itemID)
	if err != nil {
		return err
	}
	s.cart.Add(*item, s.selectedRestaurant.ID)
	return nil
}

// SetQuantity updates a cart line; zero or less removes it.
func (s *Session) SetQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(itemID, quantity)
}

// Checkout freezes the cart into a new order, clears the cart, and
// lands on the orders page. Fails on an empty cart.
func (s *Session) Checkout() (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurantName := fallbackRestaurantName
	if s.selectedRestaurant != nil {
		restaurantName = s.selectedRestaurant.Name
	}

	order, err := s.orders.Place(s.cart.Items(), checkoutDeliveryFee, restaurantName)
	if err != nil {
		return models.Order{}, err
	}
	s.cart.Clear()
	s.page = models.PageOrders
	return order, nil
}
