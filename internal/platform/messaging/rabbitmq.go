// Package messaging publishes background jobs to RabbitMQ.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"wealth_backend/internal/platform/env"
)

// Config holds the RabbitMQ settings. An empty URL disables publishing.
type Config struct {
	URL          string
	ContactQueue string
}

// LoadConfigFromEnv reads RABBITMQ_URL and RABBITMQ_CONTACT_QUEUE.
func LoadConfigFromEnv() Config {
	return Config{
		URL:          env.String("RABBITMQ_URL", ""),
		ContactQueue: env.String("RABBITMQ_CONTACT_QUEUE", "contact_messages"),
	}
}

// Enabled reports whether a broker is configured.
func (c Config) Enabled() bool { return c.URL != "" }

// publishChannel is the subset of *amqp.Channel used by RabbitPublisher.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes JSON messages to a single durable queue through the default exchange.
type RabbitPublisher struct {
	conn  *amqp.Connection
	mu    sync.Mutex // amqp channels are not meant to be shared by concurrent publishers
	ch    publishChannel
	queue string
	now   func() time.Time
}

// NewRabbitPublisher dials url and declares queue as durable.
func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}
	p := newPublisher(ch, queue)
	p.conn = conn
	return p, nil
}

func newPublisher(ch publishChannel, queue string) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, queue: queue, now: func() time.Time { return time.Now().UTC() }}
}

// Queue returns the destination queue name.
func (p *RabbitPublisher) Queue() string { return p.queue }

// PublishJSON publishes body as a persistent JSON message.
func (p *RabbitPublisher) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.now(),
			Body:         b,
		},
	)
}

// Close closes the channel and the connection. Safe on a nil publisher.
func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
