package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/money"
)

func TestEncodeOrderPlaced(t *testing.T) {
	order := domain.Order{
		ID: "ORD-424242",
		Items: []domain.CartItem{
			{ID: "glass1", Name: "Toughened Glass 8mm", Price: domain.RangePrice(money.Rupees(450), money.Rupees(1200)), Quantity: 2, Size: domain.SizeStandard},
		},
		Subtotal:      money.Rupees(900),
		Shipping:      money.Rupees(500),
		Tax:           money.Rupees(162),
		TotalAmount:   money.Rupees(1562),
		Address:       "12 Residency Road, Bengaluru",
		PaymentMethod: domain.PaymentUPI,
		Status:        domain.OrderStatusPending,
		Date:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	body, err := encodeOrderPlaced("6f1c1f0e-8a49-4b3a-9d9e-0b7f2f7c1a11", order)
	require.NoError(t, err)

	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, EventOrderPlaced, event.Event)
	assert.Equal(t, "6f1c1f0e-8a49-4b3a-9d9e-0b7f2f7c1a11", event.SessionID)
	assert.Equal(t, order, event.Order)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, 1562.0, raw["order"].(map[string]any)["totalAmount"])
}

func TestPublisherRecoversFromBrokenChannel(t *testing.T) {
	pool, opener := newTestPool(t, 1)
	publisher := NewPublisher(pool, "storefront_orders", zap.NewNop())
	ctx := context.Background()
	order := domain.Order{ID: "ORD-777", Status: domain.OrderStatusPending, Date: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}

	ch, err := pool.Acquire(ctx)
	require.NoError(t, err)
	ch.(*fakeChannel).publishErr = fmt.Errorf("channel closed by broker")
	pool.Release(ch)

	err = publisher.PublishOrderPlaced(ctx, "session-1", order)
	require.Error(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, publisher.PublishOrderPlaced(ctx, "session-1", order))
	}

	require.Equal(t, 2, opener.count())
	fresh := opener.opened[1]
	require.Len(t, fresh.published, 3)
	assert.Equal(t, []string{"storefront_orders", "storefront_orders", "storefront_orders"}, fresh.keys)
	msg := fresh.published[0]
	assert.Equal(t, "ORD-777", msg.MessageId)
	assert.Equal(t, EventOrderPlaced, msg.Type)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
}
