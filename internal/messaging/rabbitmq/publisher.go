package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
)

const EventOrderPlaced = "order.placed"

// OrderPlacedEvent is the message body published after a checkout
type OrderPlacedEvent struct {
	Event     string       `json:"event"`
	SessionID string       `json:"session_id"`
	Order     domain.Order `json:"order"`
}

type Publisher struct {
	pool      *ChannelPool
	queueName string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewPublisher(pool *ChannelPool, queueName string, logger *zap.Logger) *Publisher {
	return &Publisher{
		pool:      pool,
		queueName: queueName,
		timeout:   5 * time.Second,
		logger:    logger,
	}
}

func encodeOrderPlaced(sessionID string, order domain.Order) ([]byte, error) {
	body, err := json.Marshal(OrderPlacedEvent{
		Event:     EventOrderPlaced,
		SessionID: sessionID,
		Order:     order,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}
	return body, nil
}

// PublishOrderPlaced publishes a persistent order.placed message to the queue
func (p *Publisher) PublishOrderPlaced(ctx context.Context, sessionID string, order domain.Order) error {
	body, err := encodeOrderPlaced(sessionID, order)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// A failed publish usually leaves the channel closed; Release then frees
	// the slot for a fresh one.
	ch, err := p.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.Release(ch)

	err = ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         EventOrderPlaced,
			MessageId:    order.ID,
			Timestamp:    order.Date,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}

	p.logger.Info("Published order event",
		zap.String("order_id", order.ID),
		zap.String("queue", p.queueName),
	)
	return nil
}
