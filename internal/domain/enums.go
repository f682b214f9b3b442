package domain

import "strings"

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusProcessing ||
			newStatus == OrderStatusCancelled
	case OrderStatusProcessing:
		return newStatus == OrderStatusShipped ||
			newStatus == OrderStatusCancelled
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	default:
		return false
	}
}

// Category is the top-level catalog grouping
type Category string

const (
	CategoryPlywood Category = "plywood"
	CategoryGlass   Category = "glass"
	CategoryOther   Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPlywood, CategoryGlass, CategoryOther:
		return true
	default:
		return false
	}
}

// Size is the size option chosen for a cart line
type Size string

const (
	SizeSmall    Size = "small"
	SizeStandard Size = "standard"
	SizeLarge    Size = "large"
	SizeCustom   Size = "custom"
)

// Normalize maps unknown or empty sizes to SizeStandard.
func (s Size) Normalize() Size {
	switch Size(strings.ToLower(string(s))) {
	case SizeSmall:
		return SizeSmall
	case SizeLarge:
		return SizeLarge
	case SizeCustom:
		return SizeCustom
	default:
		return SizeStandard
	}
}

// PaymentMethod is stored with its display label
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentUPI            PaymentMethod = "UPI Payment"
)

// ParsePaymentMethod accepts the short form codes ("cod", "upi") as well as
// the display labels.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cod", strings.ToLower(string(PaymentCashOnDelivery)):
		return PaymentCashOnDelivery, true
	case "upi", strings.ToLower(string(PaymentUPI)):
		return PaymentUPI, true
	default:
		return "", false
	}
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCashOnDelivery || m == PaymentUPI
}
