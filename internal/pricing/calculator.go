// Package pricing computes cart totals in minor units.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/config"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

// RangePolicy picks the unit price charged for a product priced as a range.
type RangePolicy int

const (
	// RangeMinimum charges the bottom of the range. The storefront quotes
	// ranged products at their minimum until a size is confirmed, and
	// totals follow the quote.
	RangeMinimum RangePolicy = iota
	RangeMaximum
)

// Defaults used when no configuration is supplied.
var (
	DefaultFreeShippingThreshold = money.Rupees(5000)
	DefaultFlatShippingFee       = money.Rupees(500)
	DefaultTaxRate               = decimal.RequireFromString("0.18")
)

// Totals is the price breakdown of a cart.
type Totals struct {
	Subtotal money.Amount `json:"subtotal"`
	Shipping money.Amount `json:"shipping"`
	Tax      money.Amount `json:"tax"`
	Total    money.Amount `json:"total"`
}

type Calculator struct {
	freeShippingThreshold money.Amount
	flatShippingFee       money.Amount
	taxRate               decimal.Decimal
	rangePolicy           RangePolicy
}

// NewCalculator builds a calculator from configuration. Ranged products are
// charged at their minimum unless cfg.RangePolicy asks for the maximum.
func NewCalculator(cfg config.PricingConfig) *Calculator {
	policy := RangeMinimum
	if cfg.RangePolicy == config.RangePolicyMaximum {
		policy = RangeMaximum
	}
	return &Calculator{
		freeShippingThreshold: cfg.FreeShippingThreshold,
		flatShippingFee:       cfg.FlatShippingFee,
		taxRate:               cfg.TaxRate,
		rangePolicy:           policy,
	}
}

// NewDefaultCalculator uses the storefront's standard threshold, fee and GST rate.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(config.PricingConfig{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		FlatShippingFee:       DefaultFlatShippingFee,
		TaxRate:               DefaultTaxRate,
	})
}

// UnitPrice resolves the per-unit price of a line under the range policy.
func (c *Calculator) UnitPrice(p domain.Price) money.Amount {
	if p.Ranged && c.rangePolicy == RangeMaximum {
		return p.Max
	}
	return p.Min
}

// Quote prices a cart snapshot. Shipping is free only when the subtotal is
// strictly above the threshold. A cart whose totals do not fit in an Amount
// is rejected with a ValidationError.
func (c *Calculator) Quote(items []domain.CartItem) (Totals, error) {
	var t Totals
	for _, item := range items {
		line, err := c.UnitPrice(item.Price).Times(item.Quantity)
		if err == nil {
			t.Subtotal, err = t.Subtotal.Plus(line)
		}
		if err != nil {
			return Totals{}, outOfRange(err)
		}
	}

	t.Shipping = c.flatShippingFee
	if t.Subtotal > c.freeShippingThreshold {
		t.Shipping = 0
	}

	var err error
	if t.Tax, err = t.Subtotal.MulRate(c.taxRate); err != nil {
		return Totals{}, outOfRange(err)
	}
	if t.Total, err = t.Subtotal.Plus(t.Shipping); err == nil {
		t.Total, err = t.Total.Plus(t.Tax)
	}
	if err != nil {
		return Totals{}, outOfRange(err)
	}
	return t, nil
}

func outOfRange(err error) error {
	return &errors.ValidationError{Field: "items", Message: "cart total is out of range: " + err.Error()}
}
