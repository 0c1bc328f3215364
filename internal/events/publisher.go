package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Routing keys emitted after a send attempt.
const (
	KeyMessageSent   = "message.sent"
	KeyMessageFailed = "message.failed"
)

// MessageEvent describes the outcome of one outbound template message.
type MessageEvent struct {
	ID           string    `json:"id"`
	WaID         string    `json:"wa_id"`
	TemplateName string    `json:"template_name"`
	Language     string    `json:"language"`
	Status       string    `json:"status"`
	Error        string    `json:"error,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, key string, evt MessageEvent) error
	Close() error
}

type rmqPublisher struct {
	conn     *amqp091.Connection
	exchange string
	log      zerolog.Logger
}

// New connects to RabbitMQ and declares a durable topic exchange with
// publisher confirms enabled.
func New(url, exchange string, logger zerolog.Logger) (Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(
		exchange, "topic", true, false, false, false, nil,
	); err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		conn.Close()
		return nil, err
	}

	return &rmqPublisher{
		conn:     conn,
		exchange: exchange,
		log:      logger,
	}, nil
}

func (r *rmqPublisher) Publish(ctx context.Context, key string, evt MessageEvent) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msgID := evt.ID
	if msgID == "" {
		msgID = uuid.NewString()
	}

	err = ch.PublishWithContext(
		ctx, r.exchange, key, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msgID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err == nil {
		r.log.Info().Str("key", key).Str("exchange", r.exchange).Msg("published")
	}
	return err
}

func (r *rmqPublisher) Close() error {
	return r.conn.Close()
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(ctx context.Context, key string, evt MessageEvent) error { return nil }
func (Noop) Close() error                                                    { return nil }
