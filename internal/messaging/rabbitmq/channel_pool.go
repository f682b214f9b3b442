package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DefaultAcquireTimeout bounds how long Acquire waits for a free channel.
const DefaultAcquireTimeout = 500 * time.Millisecond

var (
	ErrPoolClosed    = errors.New("channel pool is closed")
	ErrPoolExhausted = errors.New("no channels available in pool")
)

// Channel is the part of *amqp.Channel the publisher needs
type Channel interface {
	IsClosed() bool
	Close() error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// ChannelPool shares a fixed number of channel slots over one connection.
// A slot holding nil has lost its channel and is reopened on the next
// Acquire, so a broken channel never shrinks the pool.
type ChannelPool struct {
	conn      *amqp.Connection
	open      func() (Channel, error)
	slots     chan Channel
	maxWait   time.Duration
	mu        sync.Mutex
	closed    bool
	queueName string
	logger    *zap.Logger
}

func newChannelPool(open func() (Channel, error), size int, logger *zap.Logger) *ChannelPool {
	p := &ChannelPool{
		open:    open,
		slots:   make(chan Channel, size),
		maxWait: DefaultAcquireTimeout,
		logger:  logger,
	}
	for i := 0; i < size; i++ {
		p.slots <- nil
	}
	return p
}

// NewChannelPool dials the broker and pre-creates size channels, each with
// the queue declared
func NewChannelPool(url, queueName string, size int, logger *zap.Logger) (*ChannelPool, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	pool := newChannelPool(nil, size, logger)
	pool.conn = conn
	pool.queueName = queueName
	pool.open = pool.createChannel

	for i := 0; i < size; i++ {
		<-pool.slots
		ch, err := pool.open()
		if err != nil {
			pool.slots <- nil
			pool.Close()
			return nil, fmt.Errorf("failed to create channel %d: %w", i, err)
		}
		pool.slots <- ch
	}

	logger.Info("RabbitMQ channel pool ready",
		zap.String("queue", queueName),
		zap.Int("channels", size),
	)
	return pool, nil
}

func (p *ChannelPool) createChannel() (Channel, error) {
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		p.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return ch, nil
}

// Acquire takes a slot, waiting at most the pool's acquire timeout. A slot
// whose channel is gone is reopened; if that fails the slot goes back empty
// and the error is returned.
func (p *ChannelPool) Acquire(ctx context.Context) (Channel, error) {
	timer := time.NewTimer(p.maxWait)
	defer timer.Stop()

	var ch Channel
	select {
	case slot, ok := <-p.slots:
		if !ok {
			return nil, ErrPoolClosed
		}
		ch = slot
	case <-timer.C:
		return nil, ErrPoolExhausted
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if ch != nil && !ch.IsClosed() {
		return ch, nil
	}

	fresh, err := p.open()
	if err != nil {
		p.Release(nil)
		return nil, fmt.Errorf("failed to reopen channel: %w", err)
	}
	return fresh, nil
}

// Release hands a slot back. A closed or nil channel frees the slot for
// reopening.
func (p *ChannelPool) Release(ch Channel) {
	if ch != nil && ch.IsClosed() {
		ch = nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		if ch != nil {
			ch.Close()
		}
		return
	}

	select {
	case p.slots <- ch:
	default:
		// Pool is full
		if ch != nil {
			ch.Close()
		}
	}
}

// Close closes all idle channels and the connection. Channels still held
// are closed when released.
func (p *ChannelPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	close(p.slots)
	for ch := range p.slots {
		if ch != nil {
			ch.Close()
		}
	}
	if p.conn != nil {
		p.conn.Close()
	}
	p.logger.Info("Closed RabbitMQ channel pool")
}
