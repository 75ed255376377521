package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CheesyTech/booking/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// Routing keys for booking lifecycle events.
const (
	KeyBookingCreated = "booking.created"
	KeyBookingUpdated = "booking.updated"
	KeyBookingDeleted = "booking.deleted"
	KeyStatusChanged  = "booking.status_changed"
)

type bookingEvent struct {
	Booking   *domain.Booking `json:"booking"`
	NewStatus map[string]any  `json:"new_status,omitempty"`
}

// AMQPNotifier publishes booking events to a topic exchange. With an empty
// URL the notifier stays disabled and drops events.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewAMQPNotifier(url, exchange string, log logger.Logger) (*AMQPNotifier, error) {
	if url == "" {
		log.Warn("amqp url is empty, event publishing disabled")
		return &AMQPNotifier{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (n *AMQPNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.publish(ctx, KeyBookingCreated, bookingEvent{Booking: b})
}

func (n *AMQPNotifier) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) {
	n.publish(ctx, KeyBookingUpdated, bookingEvent{Booking: b})
}

func (n *AMQPNotifier) NotifyBookingDeleted(ctx context.Context, b *domain.Booking) {
	n.publish(ctx, KeyBookingDeleted, bookingEvent{Booking: b})
}

func (n *AMQPNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, newStatus domain.BookingStatus) {
	n.publish(ctx, KeyStatusChanged, bookingEvent{Booking: b, NewStatus: newStatus.ToRecord()})
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, event bookingEvent) {
	if n.ch == nil {
		n.logger.Debug("event dropped (amqp disabled)", logger.String("key", key))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("failed to marshal booking event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		n.logger.Error("failed to publish booking event",
			logger.String("key", key),
			logger.String("booking_id", event.Booking.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
