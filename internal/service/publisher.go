package service

import (
	"context"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
)

// OrderPublisher announces placed orders to downstream consumers
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, sessionID string, order domain.Order) error
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event
func NewNopPublisher() OrderPublisher {
	return nopPublisher{}
}

func (nopPublisher) PublishOrderPlaced(context.Context, string, domain.Order) error {
	return nil
}
