package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to entities.OrderStatus
		want     bool
	}{
		{entities.StatusPending, entities.StatusAwaitingPayment, true},
		{entities.StatusPending, entities.StatusPaid, true},
		{entities.StatusPending, entities.StatusFailed, false},
		{entities.StatusAwaitingPayment, entities.StatusPaid, true},
		{entities.StatusAwaitingPayment, entities.StatusFailed, true},
		{entities.StatusAwaitingPayment, entities.StatusPending, false},
		{entities.StatusPaid, entities.StatusFailed, false},
		{entities.StatusPaid, entities.StatusAwaitingPayment, false},
		{entities.StatusFailed, entities.StatusPaid, false},
		{entities.StatusFailed, entities.StatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, entities.CanTransition(tc.from, tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, entities.StatusPending.IsTerminal())
	assert.False(t, entities.StatusAwaitingPayment.IsTerminal())
	assert.True(t, entities.StatusPaid.IsTerminal())
	assert.True(t, entities.StatusFailed.IsTerminal())
}

func TestDiscountCode_Valid(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	nairobi := time.FixedZone("EAT", 3*60*60)

	testCases := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"expires later", now.Add(time.Hour), true},
		{"expired", now.Add(-time.Second), false},
		{"expires exactly now", now, false},
		{"other zone, same instant later", now.Add(time.Minute).In(nairobi), true},
		{"other zone, already expired", now.Add(-time.Minute).In(nairobi), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := entities.DiscountCode{Code: "SAVE10", Percentage: 10, ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.want, d.Valid(now))
		})
	}
}

func TestNormalizeDiscountCode(t *testing.T) {
	assert.Equal(t, "SAVE10", entities.NormalizeDiscountCode("  save10 "))
	assert.Equal(t, "", entities.NormalizeDiscountCode("   "))
}

func TestOrder_MarshalUnmarshal(t *testing.T) {
	paidAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:       "b563feb7-b2b8-4b6c-9f5d-000000000001",
		Customer: entities.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Items: []entities.OrderItem{
			{ProductID: 1, VariationID: 11, Name: "Serum", Size: "30ml", UnitPrice: decimal.RequireFromString("450.50"), Quantity: 2},
		},
		DeliveryCost: decimal.NewFromInt(100),
		TotalPrice:   decimal.RequireFromString("1001.00"),
		Status:       entities.StatusPaid,
		Provider:     entities.ProviderHosted,
		PaidAt:       paidAt,
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.Customer, got.Customer)
	assert.True(t, order.TotalPrice.Equal(got.TotalPrice))
	assert.True(t, order.PaidAt.Equal(got.PaidAt))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("450.50")))

	assert.ErrorIs(t, got.Unmarshal([]byte("garbage")), entities.ErrInvalidOrder)
}

func TestNewOrderConfirmation(t *testing.T) {
	order := entities.Order{
		ID:       "order-1",
		Customer: entities.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Items: []entities.OrderItem{
			{Name: "Serum", Size: "30ml", UnitPrice: decimal.NewFromInt(450), Quantity: 2},
			{Name: "Toner", UnitPrice: decimal.NewFromInt(200), Quantity: 1},
		},
		DeliveryCost:       decimal.NewFromInt(100),
		DiscountCode:       "SAVE10",
		DiscountPercentage: 10,
		TotalPrice:         decimal.NewFromInt(1090),
		PaymentReference:   "QK71ABC",
	}

	c := entities.NewOrderConfirmation(order)

	assert.Equal(t, "Jane Doe", c.CustomerName)
	assert.Equal(t, "jane@example.com", c.Email)
	require.Len(t, c.Lines, 2)
	assert.Equal(t, "900", c.Lines[0].LineTotal.String())
	assert.Equal(t, "200", c.Lines[1].LineTotal.String())
	assert.Equal(t, "1090", c.Total.String())
	assert.Equal(t, "SAVE10", c.DiscountCode)
	assert.Equal(t, "QK71ABC", c.PaymentReference)
}
