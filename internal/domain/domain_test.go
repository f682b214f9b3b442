package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.False(t, OrderStatus("Lost").IsValid())
	assert.True(t, OrderStatusDelivered.IsValid())
}

func TestSizeNormalize(t *testing.T) {
	assert.Equal(t, SizeCustom, Size("Custom").Normalize())
	assert.Equal(t, SizeSmall, Size("small").Normalize())
	assert.Equal(t, SizeStandard, Size("").Normalize())
	assert.Equal(t, SizeStandard, Size("huge").Normalize())
}

func TestParsePaymentMethod(t *testing.T) {
	m, ok := ParsePaymentMethod("cod")
	assert.True(t, ok)
	assert.Equal(t, PaymentCashOnDelivery, m)

	m, ok = ParsePaymentMethod(" UPI ")
	assert.True(t, ok)
	assert.Equal(t, PaymentUPI, m)

	m, ok = ParsePaymentMethod("UPI Payment")
	assert.True(t, ok)
	assert.Equal(t, PaymentUPI, m)

	_, ok = ParsePaymentMethod("card")
	assert.False(t, ok)
}

func TestPriceJSON(t *testing.T) {
	var items []CartItem
	raw := `[{"id":"plywood1","price":1200,"quantity":1},{"id":"glass1","price":{"min":450,"max":1200},"quantity":2}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 2)

	assert.Equal(t, FixedPrice(money.Rupees(1200)), items[0].Price)
	assert.Equal(t, RangePrice(money.Rupees(450), money.Rupees(1200)), items[1].Price)

	data, err := json.Marshal(items[1].Price)
	require.NoError(t, err)
	assert.JSONEq(t, `{"min":450,"max":1200}`, string(data))

	data, err = json.Marshal(items[0].Price)
	require.NoError(t, err)
	assert.JSONEq(t, `1200`, string(data))
}

func TestPriceValidate(t *testing.T) {
	assert.NoError(t, FixedPrice(money.Rupees(1)).Validate())
	assert.NoError(t, RangePrice(money.Rupees(1), money.Rupees(1)).Validate())
	assert.Error(t, FixedPrice(0).Validate())
	assert.Error(t, RangePrice(money.Rupees(5), money.Rupees(4)).Validate())
}

func TestOrderCloneIsIndependent(t *testing.T) {
	o := Order{ID: "ORD-1", Items: []CartItem{{ID: "a", Quantity: 1}}}
	c := o.Clone()
	c.Items[0].Quantity = 9

	assert.Equal(t, 1, o.Items[0].Quantity)
}
