package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// eventEnvelope is the message body written to the exchange.
type eventEnvelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// AMQPEventPublisher publishes domain events to a topic exchange, using the
// event type as routing key.
type AMQPEventPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

// NewAMQPEventPublisher dials the broker and declares a durable topic exchange.
func NewAMQPEventPublisher(url, exchange string) (*AMQPEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &AMQPEventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func newAMQPEventPublisherWithChannel(ch amqpChannel, exchange string) *AMQPEventPublisher {
	return &AMQPEventPublisher{channel: ch, exchange: exchange}
}

func (p *AMQPEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	body, err := json.Marshal(eventEnvelope{Type: eventType, OccurredAt: time.Now().UTC(), Data: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(pubCtx, p.exchange, eventType, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", eventType, err)
	}

	logger.Get().Debug("Published event", zap.String("type", eventType), zap.String("exchange", p.exchange))
	return nil
}

func (p *AMQPEventPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			logger.Get().Warn("Error closing RabbitMQ channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}
	return nil
}

var _ domain.EventPublisher = (*AMQPEventPublisher)(nil)
