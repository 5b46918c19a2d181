package session

import (
	"os"
	"testing"

	"foodexpress/config"
	"foodexpress/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.InitDB()
	os.Exit(m.Run())
}

func signedIn(t *testing.T) *Session {
	t.Helper()
	s := New()
	s.Login(models.User{Name: "Ada", Email: "ada@example.com"})
	return s
}

func TestNewSessionStartsOnAuthPage(t *testing.T) {
	snap := New().Snapshot()
	assert.Equal(t, models.PageAuth, snap.Page)
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.UserName)
	assert.Nil(t, snap.SelectedRestaurant)
	assert.Equal(t, "All", snap.Category)
}

func TestLoginLandsOnHome(t *testing.T) {
	s := signedIn(t)
	snap := s.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, models.PageHome, snap.Page)
	assert.Equal(t, "Ada", snap.UserName)
}

func TestNavigateRequiresLogin(t *testing.T) {
	s := New()
	assert.Error(t, s.Navigate(models.PageCart))

	s.Login(models.User{Name: "Ada"})
	assert.NoError(t, s.Navigate(models.PageCart))
	assert.Equal(t, models.PageCart, s.Snapshot().Page)
}

func TestNavigateToRestaurantWithoutSelection(t *testing.T) {
	s := signedIn(t)

	// Legal transition; the view renders nothing for a nil selection.
	require.NoError(t, s.Navigate(models.PageRestaurant))
	snap := s.Snapshot()
	assert.Equal(t, models.PageRestaurant, snap.Page)
	assert.Nil(t, snap.SelectedRestaurant)
}

func TestSelectRestaurant(t *testing.T) {
	s := signedIn(t)

	require.NoError(t, s.SelectRestaurant("1"))
	snap := s.Snapshot()
	assert.Equal(t, models.PageRestaurant, snap.Page)
	require.NotNil(t, snap.SelectedRestaurant)
	assert.Equal(t, "Bella Italia", snap.SelectedRestaurant.Name)

	assert.Error(t, s.SelectRestaurant("999"))
}

func TestSelectRestaurantRequiresLogin(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.SelectRestaurant("1"), ErrNotSignedIn)
}

func TestSearchAndCategoryFilterSnapshot(t *testing.T) {
	s := signedIn(t)

	s.SetSearchQuery("garden")
	snap := s.Snapshot()
	assert.Equal(t, models.PageHome, snap.Page)
	require.Len(t, snap.Restaurants, 1)
	assert.Equal(t, "Green Garden", snap.Restaurants[0].Name)

	s.SetSearchQuery("")
	s.SetCategory("Desserts")
	snap = s.Snapshot()
	require.Len(t, snap.Restaurants, 1)
	assert.Equal(t, "Sweet Dreams", snap.Restaurants[0].Name)
}

func TestAddToCartNeedsSelection(t *testing.T) {
	s := signedIn(t)
	assert.ErrorIs(t, s.AddToCart("1"), ErrNoRestaurantSelected)

	require.NoError(t, s.SelectRestaurant("2"))
	assert.Error(t, s.AddToCart("999"))

	require.NoError(t, s.AddToCart("1"))
	snap := s.Snapshot()
	require.Len(t, snap.Cart, 1)
	assert.Equal(t, "2", snap.Cart[0].RestaurantID)
}

func TestCheckoutEmptyCartRefused(t *testing.T) {
	s := signedIn(t)
	_, err := s.Checkout()
	assert.Error(t, err)
	assert.Equal(t, models.PageHome, s.Snapshot().Page)
	assert.Empty(t, s.Snapshot().Orders)
}

func TestEndToEndOrderFlow(t *testing.T) {
	s := signedIn(t)
	require.NoError(t, s.SelectRestaurant("1"))

	// Margherita Pizza (14.99) twice, Tiramisu (8.99) once
	require.NoError(t, s.AddToCart("1"))
	require.NoError(t, s.AddToCart("1"))
	require.NoError(t, s.AddToCart("4"))

	snap := s.Snapshot()
	require.Len(t, snap.Cart, 2)
	assert.Equal(t, 3, snap.CartCount)
	assert.True(t, snap.CanCheckout)
	assert.Equal(t, "38.97", snap.SubtotalDisplay)
	assert.True(t, decimal.RequireFromString("38.97").Equal(snap.Subtotal))

	order, err := s.Checkout()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("41.96").Equal(order.Total))
	assert.Equal(t, models.StatusPreparing, order.Status)
	assert.Equal(t, "Bella Italia", order.RestaurantName)

	snap = s.Snapshot()
	assert.Equal(t, models.PageOrders, snap.Page)
	assert.Empty(t, snap.Cart)
	assert.False(t, snap.CanCheckout)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, order.ID, snap.Orders[0].ID)

	// Cart mutation after checkout must not touch the placed order
	require.NoError(t, s.Navigate(models.PageRestaurant))
	require.NoError(t, s.AddToCart("2"))
	s.SetQuantity("2", 10)

	stored := s.Snapshot().Orders[0]
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("41.96").Equal(stored.Total))
}

func TestSetQuantityRemovalThroughSession(t *testing.T) {
	s := signedIn(t)
	require.NoError(t, s.SelectRestaurant("1"))
	require.NoError(t, s.AddToCart("3"))

	s.SetQuantity("3", -1)
	assert.Empty(t, s.Snapshot().Cart)
}

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()

	first := m.Create()
	second := m.Create()
	assert.NotEqual(t, first.ID, second.ID)

	got, ok := m.Get(first.ID)
	assert.True(t, ok)
	assert.Same(t, first, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}
