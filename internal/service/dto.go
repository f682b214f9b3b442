package service

import (
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/pricing"
)

// AddCartItemRequest represents an add-to-cart payload
type AddCartItemRequest struct {
	ProductID  string            `json:"product_id" binding:"required"`
	Quantity   int               `json:"quantity"`
	Size       domain.Size       `json:"size"`
	Dimensions domain.Dimensions `json:"dimensions"`
}

// UpdateCartItemRequest replaces the fields that are present
type UpdateCartItemRequest struct {
	Quantity   *int               `json:"quantity,omitempty"`
	Size       *domain.Size       `json:"size,omitempty"`
	Dimensions *domain.Dimensions `json:"dimensions,omitempty"`
}

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// CartView is a cart snapshot with its price breakdown
type CartView struct {
	Items  []domain.CartItem `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}
