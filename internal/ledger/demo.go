package ledger

import (
	"time"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

func demoItem(id, name string, qty int, rupees int64) domain.CartItem {
	return domain.CartItem{
		ID:       id,
		Name:     name,
		Price:    domain.FixedPrice(money.Rupees(rupees)),
		Quantity: qty,
		Size:     domain.SizeStandard,
	}
}

func demoOrder(id string, items []domain.CartItem, address string, method domain.PaymentMethod, status domain.OrderStatus, date string) domain.Order {
	var subtotal money.Amount
	for _, item := range items {
		line, err := item.Price.Min.Times(item.Quantity)
		if err != nil {
			panic(err)
		}
		subtotal += line
	}
	created, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic(err)
	}
	return domain.Order{
		ID:            id,
		Items:         items,
		Subtotal:      subtotal,
		TotalAmount:   subtotal,
		Address:       address,
		PaymentMethod: method,
		Status:        status,
		Date:          created,
	}
}

// DemoOrders returns sample orders for an empty order-status page.
func DemoOrders() []domain.Order {
	return []domain.Order{
		demoOrder("ORD-123456",
			[]domain.CartItem{
				demoItem("plywood1", "Premium BWR Plywood", 2, 1200),
				demoItem("plywood4", "MDF Board 18mm", 1, 850),
			},
			"123 Main St, Bangalore, Karnataka - 560001",
			domain.PaymentCashOnDelivery,
			domain.OrderStatusDelivered,
			"2025-05-01T10:30:00Z",
		),
		demoOrder("ORD-789012",
			[]domain.CartItem{
				demoItem("glass1", "Toughened Glass 8mm", 1, 1200),
			},
			"456 Oak Lane, Mumbai, Maharashtra - 400001",
			domain.PaymentUPI,
			domain.OrderStatusShipped,
			"2025-05-03T14:15:00Z",
		),
		demoOrder("ORD-345678",
			[]domain.CartItem{
				demoItem("other1", "Decorative Laminates", 3, 350),
				demoItem("glass5", "Mirror Glass", 1, 500),
			},
			"789 Pine Road, Delhi, Delhi - 110001",
			domain.PaymentCashOnDelivery,
			domain.OrderStatusProcessing,
			"2025-05-04T16:45:00Z",
		),
	}
}
