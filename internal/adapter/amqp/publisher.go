package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp091 "github.com/rabbitmq/amqp091-go"
)

// Publisher sends recalculation requests to a durable queue. Requests are
// rare, so each publish opens its own connection.
type Publisher struct {
	url   string
	queue string
	log   *slog.Logger
	now   func() time.Time
}

// NewPublisher creates a publisher for queue on the broker at url.
func NewPublisher(url, queue string, log *slog.Logger) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
		log:   log.With("component", "recalc_publisher"),
		now:   time.Now,
	}
}

// PublishRecalc enqueues a persistent request for userID.
func (p *Publisher) PublishRecalc(ctx context.Context, userID uuid.UUID, reason string) error {
	body, err := json.Marshal(RecalcRequest{
		UserID:      userID,
		Reason:      reason,
		RequestedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal recalc request: %w", err)
	}

	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := declare(ch, p.queue); err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}

	p.log.InfoContext(ctx, "recalculation requested", "user_id", userID, "reason", reason)
	return nil
}

// Ping dials the broker; used by the readiness check.
func (p *Publisher) Ping(ctx context.Context) error {
	conn, err := amqp091.DialConfig(p.url, amqp091.Config{Dial: amqp091.DefaultDial(2 * time.Second)})
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	return conn.Close()
}

func declare(ch *amqp091.Channel, queue string) error {
	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return nil
}
