package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

// Product is a read-only catalog entry
type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Category         Category          `json:"category"`
	Subcategory      string            `json:"subcategory,omitempty"`
	Price            Price             `json:"price"`
	ImageURL         string            `json:"imageUrl,omitempty"`
	Features         []string          `json:"features,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	Availability     bool              `json:"availability"`
	MinOrderQuantity int               `json:"minOrderQuantity"`
}

// Clone returns a copy that shares no slices or maps with p.
func (p Product) Clone() Product {
	p.Features = slices.Clone(p.Features)
	p.Specifications = maps.Clone(p.Specifications)
	return p
}

// Dimensions are free-form numeric strings entered for custom sizes
type Dimensions struct {
	Width  string `json:"width"`
	Height string `json:"height"`
	Depth  string `json:"depth,omitempty"`
}

// MaxQuantity is the largest quantity a single cart line may hold.
const MaxQuantity = 9999

// CartItem is one line of a cart. ID is the product identifier; the display
// fields are copied from the product when the line is created.
type CartItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Price      Price      `json:"price"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	Quantity   int        `json:"quantity"`
	Size       Size       `json:"size"`
	Dimensions Dimensions `json:"dimensions"`
}

// Order is a finalized checkout. Items and amounts never change after the
// order is appended to the ledger; only Status does.
type Order struct {
	ID            string        `json:"id"`
	Items         []CartItem    `json:"items"`
	Subtotal      money.Amount  `json:"subtotal"`
	Shipping      money.Amount  `json:"shipping"`
	Tax           money.Amount  `json:"tax"`
	TotalAmount   money.Amount  `json:"totalAmount"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        OrderStatus   `json:"status"`
	Date          time.Time     `json:"date"`
}

// CloneItems returns an independent copy of a list of cart lines.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return []CartItem{}
	}
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}

// Clone returns a copy of the order that shares no slices with o.
func (o Order) Clone() Order {
	o.Items = CloneItems(o.Items)
	return o
}
