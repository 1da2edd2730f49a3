package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestCartItemTotalPrice(t *testing.T) {
	item := CartItem{
		Service:  Service{Price: price(45.00)},
		Quantity: 3,
	}
	assert.Equal(t, 135.00, item.TotalPrice())

	unpriced := CartItem{Service: Service{}, Quantity: 2}
	assert.Equal(t, 0.0, unpriced.TotalPrice())
}

func TestCartTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Service: Service{Price: price(45.00)}, Quantity: 2},
			{Service: Service{Price: price(80.00)}, Quantity: 1},
			{Service: Service{Price: price(30.00)}, Quantity: 3},
		},
	}
	assert.Equal(t, 260.00, cart.TotalPrice())
	assert.Equal(t, 6, cart.ItemsCount())
}

func TestEmptyCartTotals(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0.0, cart.TotalPrice())
	assert.Equal(t, 0, cart.ItemsCount())
}

func TestOrderItemTotalPrice(t *testing.T) {
	// The snapshotted price rules, not the current service price.
	item := OrderItem{
		Service:  Service{Price: price(99.00)},
		Price:    80.00,
		Quantity: 2,
	}
	assert.Equal(t, 160.00, item.TotalPrice())
}
