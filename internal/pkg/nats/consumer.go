package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
}

// NewConsumer creates a new NATS consumer for a subject. A non-empty queue
// group load-balances messages across service instances.
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	if queueGroup != "" {
		subscription, err = conn.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = conn.Subscribe(subject, wrapped)
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		conn:         conn,
		subscription: subscription,
	}, nil
}

// IsActive returns true if the consumer is actively consuming messages
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
		c.subscription = nil
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
