package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/config"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

func line(price domain.Price, qty int) domain.CartItem {
	return domain.CartItem{ID: "p", Price: price, Quantity: qty}
}

func quote(t *testing.T, c *Calculator, items ...domain.CartItem) Totals {
	t.Helper()
	got, err := c.Quote(items)
	require.NoError(t, err)
	return got
}

func TestQuoteBelowThreshold(t *testing.T) {
	c := NewDefaultCalculator()

	got := quote(t, c, line(domain.FixedPrice(money.Rupees(1000)), 3))

	assert.Equal(t, Totals{
		Subtotal: money.Rupees(3000),
		Shipping: money.Rupees(500),
		Tax:      money.Rupees(540),
		Total:    money.Rupees(4040),
	}, got)
}

func TestQuoteShippingThreshold(t *testing.T) {
	c := NewDefaultCalculator()

	tests := []struct {
		name     string
		subtotal money.Amount
		shipping money.Amount
	}{
		{"just above", money.Rupees(5001), 0},
		{"one paisa above", money.Rupees(5000) + 1, 0},
		{"exactly at", money.Rupees(5000), money.Rupees(500)},
		{"below", money.Rupees(4999), money.Rupees(500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quote(t, c, line(domain.FixedPrice(tt.subtotal), 1))
			assert.Equal(t, tt.subtotal, got.Subtotal)
			assert.Equal(t, tt.shipping, got.Shipping)
			assert.Equal(t, got.Subtotal+got.Shipping+got.Tax, got.Total)
		})
	}
}

func TestQuoteUsesRangeMinimum(t *testing.T) {
	c := NewDefaultCalculator()
	glass := domain.RangePrice(money.Rupees(450), money.Rupees(1200))

	got := quote(t, c,
		line(glass, 2),
		line(domain.FixedPrice(money.Rupees(1200)), 1),
	)

	assert.Equal(t, money.Rupees(2100), got.Subtotal)
	assert.Equal(t, money.Rupees(378), got.Tax)
	assert.Equal(t, money.Rupees(450), c.UnitPrice(glass))
}

func TestQuoteEmptyCart(t *testing.T) {
	got := quote(t, NewDefaultCalculator())

	assert.Equal(t, money.Amount(0), got.Subtotal)
	assert.Equal(t, money.Rupees(500), got.Shipping)
	assert.Equal(t, money.Rupees(500), got.Total)
}

func TestQuoteConfigurable(t *testing.T) {
	c := NewCalculator(config.PricingConfig{
		FreeShippingThreshold: money.Rupees(100),
		FlatShippingFee:       money.Rupees(40),
		TaxRate:               decimal.RequireFromString("0.05"),
	})

	got := quote(t, c, line(domain.FixedPrice(money.Amount(3333)), 3))

	assert.Equal(t, money.Amount(9999), got.Subtotal)
	assert.Equal(t, money.Rupees(40), got.Shipping)
	// 99.99 * 0.05 = 4.9995, rounded to 5.00
	assert.Equal(t, money.Amount(500), got.Tax)
	assert.Equal(t, "144.99", got.Total.String())
}

func TestRangeMaximumPolicy(t *testing.T) {
	c := NewCalculator(config.PricingConfig{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		FlatShippingFee:       DefaultFlatShippingFee,
		TaxRate:               DefaultTaxRate,
		RangePolicy:           config.RangePolicyMaximum,
	})
	glass := domain.RangePrice(money.Rupees(450), money.Rupees(1200))

	assert.Equal(t, money.Rupees(1200), c.UnitPrice(glass))
	assert.Equal(t, money.Rupees(800), c.UnitPrice(domain.FixedPrice(money.Rupees(800))))

	got := quote(t, c, line(glass, 2))
	assert.Equal(t, money.Rupees(2400), got.Subtotal)
}

func TestQuoteRejectsOverflow(t *testing.T) {
	c := NewDefaultCalculator()

	tests := []struct {
		name  string
		items []domain.CartItem
	}{
		{"line overflows", []domain.CartItem{line(domain.FixedPrice(money.Rupees(1200)), 1e15)}},
		{"subtotal overflows", []domain.CartItem{
			line(domain.FixedPrice(money.Amount(math.MaxInt64/2)), 1),
			line(domain.FixedPrice(money.Amount(math.MaxInt64/2)), 1),
			line(domain.FixedPrice(money.Amount(math.MaxInt64/2)), 1),
		}},
		{"total overflows", []domain.CartItem{line(domain.FixedPrice(money.Amount(math.MaxInt64-1)), 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Quote(tt.items)
			var validationErr *errors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "items", validationErr.Field)
			assert.Equal(t, Totals{}, got)
		})
	}
}
