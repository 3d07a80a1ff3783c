package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRental_CanApply(t *testing.T) {
	tests := []struct {
		name   string
		status RentalStatus
		action RentalAction
		want   bool
	}{
		{"pause active", RentalActive, ActionPause, true},
		{"pause paused", RentalPaused, ActionPause, false},
		{"resume paused", RentalPaused, ActionResume, true},
		{"resume active", RentalActive, ActionResume, false},
		{"complete active", RentalActive, ActionComplete, true},
		{"complete paused", RentalPaused, ActionComplete, true},
		{"complete completed", RentalCompleted, ActionComplete, false},
		{"pause completed", RentalCompleted, ActionPause, false},
		{"unknown action", RentalActive, RentalAction("extend"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Rental{Status: tt.status}
			assert.Equal(t, tt.want, r.CanApply(tt.action))
		})
	}
}

func TestSurfboardStatusFor(t *testing.T) {
	assert.Equal(t, SurfboardRented, SurfboardStatusFor(RentalActive))
	assert.Equal(t, SurfboardPaused, SurfboardStatusFor(RentalPaused))
	assert.Equal(t, SurfboardAvailable, SurfboardStatusFor(RentalCompleted))
}

func TestOrder_CalculateTotal(t *testing.T) {
	order := &Order{Items: []OrderItem{
		{ProductID: uuid.New(), UnitPrice: decimal.RequireFromString("59.90"), Quantity: 2},
		{ProductID: uuid.New(), UnitPrice: decimal.RequireFromString("10.10"), Quantity: 1},
	}}

	assert.True(t, decimal.RequireFromString("129.90").Equal(order.CalculateTotal()))
}
