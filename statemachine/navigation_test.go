package statemachine

import (
	"testing"

	"foodexpress/models"

	"github.com/stretchr/testify/assert"
)

func TestCanNavigate(t *testing.T) {
	tests := []struct {
		name          string
		from          models.Page
		to            models.Page
		authenticated bool
		wantErr       bool
	}{
		{name: "auth_to_home_needs_login_first", from: models.PageAuth, to: models.PageHome, authenticated: false, wantErr: true},
		{name: "auth_to_home_after_login", from: models.PageAuth, to: models.PageHome, authenticated: true, wantErr: false},
		{name: "auth_to_cart_denied", from: models.PageAuth, to: models.PageCart, authenticated: false, wantErr: true},
		{name: "auth_to_orders_denied_even_signed_in", from: models.PageAuth, to: models.PageOrders, authenticated: true, wantErr: true},
		{name: "home_to_cart_signed_in", from: models.PageHome, to: models.PageCart, authenticated: true, wantErr: false},
		{name: "home_to_cart_signed_out", from: models.PageHome, to: models.PageCart, authenticated: false, wantErr: true},
		{name: "orders_to_restaurant_signed_in", from: models.PageOrders, to: models.PageRestaurant, authenticated: true, wantErr: false},
		{name: "self_transition_allowed", from: models.PageCart, to: models.PageCart, authenticated: true, wantErr: false},
		{name: "no_edge_back_to_auth", from: models.PageHome, to: models.PageAuth, authenticated: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanNavigate(tt.from, tt.to, tt.authenticated)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStorefrontPagesFullyConnected(t *testing.T) {
	for _, from := range StorefrontPages {
		for _, to := range StorefrontPages {
			assert.NoError(t, CanNavigate(from, to, true), "%s -> %s", from, to)
		}
	}
}

func TestValidPagesFrom(t *testing.T) {
	assert.Empty(t, ValidPagesFrom(models.PageAuth, false))
	assert.Equal(t, []models.Page{models.PageHome}, ValidPagesFrom(models.PageAuth, true))
	assert.Len(t, ValidPagesFrom(models.PageHome, true), len(StorefrontPages))
	assert.Empty(t, ValidPagesFrom(models.PageHome, false))
}

func TestStatusFlow(t *testing.T) {
	flow := StatusFlow()
	assert.Equal(t, []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}, flow)

	assert.False(t, IsTerminalStatus(models.StatusPreparing))
	assert.False(t, IsTerminalStatus(models.StatusOutForDelivery))
	assert.True(t, IsTerminalStatus(models.StatusDelivered))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Preparing", StatusLabel(models.StatusPreparing))
	assert.Equal(t, "Out for Delivery", StatusLabel(models.StatusOutForDelivery))
	assert.Equal(t, "Delivered", StatusLabel(models.StatusDelivered))
	assert.Equal(t, "Unknown", StatusLabel(models.OrderStatus("bogus")))
}
