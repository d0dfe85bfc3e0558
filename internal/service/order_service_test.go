package service

import (
	"testing"

	"github.com/RoyceAzure/lab/checkout/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCalculateOrderAmount(t *testing.T) {
	orderService := NewOrderService(nil)

	amount := orderService.CalculateOrderAmount(
		model.OrderItem{ProductID: "productA", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		model.OrderItem{ProductID: "productB", Quantity: 1, UnitPrice: decimal.RequireFromString("4.50")},
	)

	require.True(t, amount.Equal(decimal.RequireFromString("24.48")))
}

func TestCalculateOrderAmount_Empty(t *testing.T) {
	orderService := NewOrderService(nil)

	amount := orderService.CalculateOrderAmount()

	require.True(t, amount.IsZero())
}
