package ledger

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

// Ledger is the append-only order list of one session. Items and amounts of
// an appended order are never rewritten; only the status can change.
type Ledger struct {
	kv     repository.KeyValueStore
	scope  string
	logger *zap.Logger
}

func NewLedger(kv repository.KeyValueStore, scope string, logger *zap.Logger) *Ledger {
	return &Ledger{
		kv:     kv,
		scope:  scope,
		logger: logger,
	}
}

// Append stores a copy of order at the end of the ledger. It fails with
// ErrConflict if an order with the same id is already present.
func (l *Ledger) Append(ctx context.Context, order domain.Order) error {
	return l.kv.Update(ctx, l.scope, repository.KeyOrders, func(current []byte) ([]byte, error) {
		orders := l.decode(current)
		for _, o := range orders {
			if o.ID == order.ID {
				return nil, &errors.ErrConflict{Resource: "order", ID: order.ID}
			}
		}
		return json.Marshal(append(orders, order.Clone()))
	})
}

// List returns every order in ledger order.
func (l *Ledger) List(ctx context.Context) ([]domain.Order, error) {
	data, err := l.kv.Get(ctx, l.scope, repository.KeyOrders)
	if err != nil {
		return nil, err
	}
	return l.decode(data), nil
}

func (l *Ledger) Get(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: id}
}

// UpdateStatus moves an order to a new status if the transition is allowed.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, &errors.ValidationError{Field: "status", Message: "unknown order status " + string(status)}
	}

	var updated domain.Order
	err := l.kv.Update(ctx, l.scope, repository.KeyOrders, func(current []byte) ([]byte, error) {
		orders := l.decode(current)
		for i := range orders {
			if orders[i].ID != id {
				continue
			}
			if !orders[i].Status.CanTransitionTo(status) {
				return nil, &errors.ErrInvalidStateTransition{From: orders[i].Status, To: status}
			}
			orders[i].Status = status
			updated = orders[i]
			return json.Marshal(orders)
		}
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Order status updated",
		zap.String("session", l.scope),
		zap.String("order_id", id),
		zap.String("status", string(status)),
	)
	return &updated, nil
}

func (l *Ledger) decode(data []byte) []domain.Order {
	orders, err := repository.DecodeList[domain.Order](data)
	if err != nil {
		l.logger.Error("Discarding unreadable order ledger",
			zap.String("session", l.scope),
			zap.Error(err),
		)
		return []domain.Order{}
	}
	return orders
}
