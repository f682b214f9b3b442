package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

// Price is either a single amount or a {min, max} range. A single amount is
// held as Min == Max with Ranged unset.
type Price struct {
	Min    money.Amount
	Max    money.Amount
	Ranged bool
}

func FixedPrice(a money.Amount) Price {
	return Price{Min: a, Max: a}
}

func RangePrice(min, max money.Amount) Price {
	return Price{Min: min, Max: max, Ranged: true}
}

// Validate checks the price is positive and, for ranges, that min <= max.
func (p Price) Validate() error {
	if p.Min <= 0 {
		return fmt.Errorf("price must be positive, got %s", p.Min)
	}
	if p.Ranged && p.Min > p.Max {
		return fmt.Errorf("price range min %s exceeds max %s", p.Min, p.Max)
	}
	return nil
}

func (p Price) String() string {
	if p.Ranged {
		return fmt.Sprintf("%s - %s", p.Min, p.Max)
	}
	return p.Min.String()
}

type priceRange struct {
	Min money.Amount `json:"min"`
	Max money.Amount `json:"max"`
}

// MarshalJSON writes a number for a single price and an object for a range.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Ranged {
		return json.Marshal(priceRange{Min: p.Min, Max: p.Max})
	}
	return json.Marshal(p.Min)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var r priceRange
		if err := json.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("invalid price range: %w", err)
		}
		*p = RangePrice(r.Min, r.Max)
		return nil
	}
	var a money.Amount
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = FixedPrice(a)
	return nil
}
