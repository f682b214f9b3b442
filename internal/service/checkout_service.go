package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/cart"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/config"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/ledger"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/pricing"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

const maxOrderIDAttempts = 5

type CheckoutService struct {
	kv        repository.KeyValueStore
	calc      *pricing.Calculator
	publisher OrderPublisher
	delay     time.Duration
	logger    *zap.Logger

	now        func() time.Time
	newOrderID func() string
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	kv repository.KeyValueStore,
	calc *pricing.Calculator,
	publisher OrderPublisher,
	cfg config.CheckoutConfig,
	logger *zap.Logger,
) *CheckoutService {
	if publisher == nil {
		publisher = NewNopPublisher()
	}
	return &CheckoutService{
		kv:         kv,
		calc:       calc,
		publisher:  publisher,
		delay:      cfg.Delay,
		logger:     logger,
		now:        time.Now,
		newOrderID: randomOrderID,
	}
}

func randomOrderID() string {
	return fmt.Sprintf("ORD-%d", rand.Intn(1000000))
}

// PlaceOrder turns a cart snapshot into a Pending order, appends it to the
// session's ledger and takes the snapshot's units out of the cart.
//
// Validation happens before anything is written. If ctx is cancelled while
// waiting out the checkout delay the order is abandoned and the cart is left
// as it was.
func (s *CheckoutService) PlaceOrder(
	ctx context.Context,
	sessionID string,
	snapshot []domain.CartItem,
	address string,
	method domain.PaymentMethod,
) (*domain.Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &errors.ValidationError{Field: "address", Message: "delivery address is required"}
	}
	if len(snapshot) == 0 {
		return nil, &errors.ValidationError{Field: "items", Message: "cart is empty"}
	}
	if !method.IsValid() {
		return nil, &errors.ValidationError{Field: "payment_method", Message: "unsupported payment method"}
	}

	items := domain.CloneItems(snapshot)
	totals, err := s.calc.Quote(items)
	if err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		s.logger.Info("Checkout abandoned",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	// The ledger append and cart clear run to completion once started.
	ctx = context.WithoutCancel(ctx)

	order := domain.Order{
		Items:         items,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Tax:           totals.Tax,
		TotalAmount:   totals.Total,
		Address:       address,
		PaymentMethod: method,
		Status:        domain.OrderStatusPending,
		Date:          s.now().UTC(),
	}

	orders := ledger.NewLedger(s.kv, sessionID, s.logger)
	for attempt := 1; ; attempt++ {
		order.ID = s.newOrderID()
		err := orders.Append(ctx, order)
		if err == nil {
			break
		}
		if _, ok := err.(*errors.ErrConflict); ok && attempt < maxOrderIDAttempts {
			s.logger.Debug("Order id collision, retrying", zap.String("order_id", order.ID))
			continue
		}
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	// Only the checked-out units leave the cart; lines added during the delay stay.
	if err := cart.NewStore(s.kv, sessionID, s.logger).RemoveCheckedOut(ctx, items); err != nil {
		// The order is already recorded; don't fail the request
		s.logger.Error("Failed to clear cart after checkout",
			zap.String("session", sessionID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	if err := s.publisher.PublishOrderPlaced(ctx, sessionID, order); err != nil {
		s.logger.Warn("Failed to publish order placed event",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("Order placed",
		zap.String("session", sessionID),
		zap.String("order_id", order.ID),
		zap.String("total", order.TotalAmount.String()),
		zap.Int("items", len(order.Items)),
	)

	return &order, nil
}

func (s *CheckoutService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
