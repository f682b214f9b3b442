package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/ledger"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

type OrderService struct {
	kv     repository.KeyValueStore
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(kv repository.KeyValueStore, logger *zap.Logger) *OrderService {
	return &OrderService{
		kv:     kv,
		logger: logger,
	}
}

func (s *OrderService) ledger(sessionID string) *ledger.Ledger {
	return ledger.NewLedger(s.kv, sessionID, s.logger)
}

// List returns the session's orders narrowed by status and free text search.
// An empty status or "all" matches every status.
func (s *OrderService) List(ctx context.Context, sessionID, status, search string) ([]domain.Order, error) {
	if status != "" && status != ledger.StatusAll && !domain.OrderStatus(status).IsValid() {
		return nil, &errors.ValidationError{Field: "status", Message: "unknown order status " + status}
	}

	orders, err := s.ledger(sessionID).List(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Filter(orders, status, search), nil
}

func (s *OrderService) Get(ctx context.Context, sessionID, orderID string) (*domain.Order, error) {
	return s.ledger(sessionID).Get(ctx, orderID)
}

// UpdateStatus applies an administrative status change
func (s *OrderService) UpdateStatus(ctx context.Context, sessionID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	return s.ledger(sessionID).UpdateStatus(ctx, orderID, status)
}

// Seed appends orders to a session ledger, skipping ids that already exist.
// It returns how many orders were written.
func (s *OrderService) Seed(ctx context.Context, sessionID string, orders []domain.Order) (int, error) {
	l := s.ledger(sessionID)
	written := 0
	for _, order := range orders {
		if err := l.Append(ctx, order); err != nil {
			if _, ok := err.(*errors.ErrConflict); ok {
				s.logger.Debug("Order already present, skipping", zap.String("order_id", order.ID))
				continue
			}
			return written, err
		}
		written++
	}
	return written, nil
}
