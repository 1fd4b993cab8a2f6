package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Outcomes of one delivery.
const (
	OutcomeOK       = "ok"
	OutcomeRequeued = "requeued"
	OutcomeDropped  = "dropped"
)

const maxBackoff = 30 * time.Second

type recalculator interface {
	RecalculateUser(ctx context.Context, userID uuid.UUID) (domain.Recalculation, error)
}

// JobObserver is told the outcome of every delivery.
type JobObserver interface {
	RecalcJob(outcome string)
}

// ConsumerConfig configures a Consumer.
type ConsumerConfig struct {
	URL      string
	Queue    string
	Prefetch int
}

// Consumer runs recalculations for queued requests. A failed request is
// requeued once; a second failure drops it.
type Consumer struct {
	cfg  ConsumerConfig
	svc  recalculator
	obs  JobObserver
	log  *slog.Logger
	dial func(url string) (*amqp091.Connection, error)
}

// NewConsumer creates a consumer. obs may be nil.
func NewConsumer(cfg ConsumerConfig, svc recalculator, obs JobObserver, log *slog.Logger) *Consumer {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 1
	}
	return &Consumer{
		cfg:  cfg,
		svc:  svc,
		obs:  obs,
		log:  log.With("component", "recalc_consumer", "queue", cfg.Queue),
		dial: amqp091.Dial,
	}
}

// Run consumes until ctx is cancelled, reconnecting with exponential backoff.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := c.dial(c.cfg.URL)
		if err != nil {
			c.log.WarnContext(ctx, "dial broker failed", "error", err, "retry_in", backoff)
			if !sleep(ctx, backoff) {
				return nil
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return nil
		}
		c.log.WarnContext(ctx, "consume loop ended, reconnecting", "error", err)
		if !sleep(ctx, 2*time.Second) {
			return nil
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp091.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	if err := declare(ch, c.cfg.Queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.cfg.Queue, err)
	}
	c.log.InfoContext(ctx, "consuming recalculation requests")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.settle(ctx, d)
		}
	}
}

func (c *Consumer) settle(ctx context.Context, d amqp091.Delivery) {
	outcome := c.Handle(ctx, d.Body, d.Redelivered)

	var err error
	switch outcome {
	case OutcomeOK:
		err = d.Ack(false)
	case OutcomeRequeued:
		err = d.Nack(false, true)
	default:
		err = d.Nack(false, false)
	}
	if err != nil {
		c.log.ErrorContext(ctx, "settle delivery", "outcome", outcome, "error", err)
	}
}

// Handle processes one message body and returns how it should be settled.
func (c *Consumer) Handle(ctx context.Context, body []byte, redelivered bool) string {
	outcome := c.handle(ctx, body, redelivered)
	if c.obs != nil {
		c.obs.RecalcJob(outcome)
	}
	return outcome
}

func (c *Consumer) handle(ctx context.Context, body []byte, redelivered bool) string {
	var req RecalcRequest
	if err := json.Unmarshal(body, &req); err != nil || req.UserID == uuid.Nil {
		c.log.ErrorContext(ctx, "malformed recalculation request", "body", string(body), "error", err)
		return OutcomeDropped
	}

	result, err := c.svc.RecalculateUser(ctx, req.UserID)
	if err != nil {
		c.log.ErrorContext(ctx, "recalculation failed",
			"user_id", req.UserID,
			"reason", req.Reason,
			"redelivered", redelivered,
			"error", err,
		)
		if redelivered {
			return OutcomeDropped
		}
		return OutcomeRequeued
	}

	c.log.InfoContext(ctx, "recalculation request handled",
		"user_id", req.UserID,
		"reason", req.Reason,
		"requested_at", req.RequestedAt,
		"total_sessions", result.Stats.TotalSessions,
	)
	return OutcomeOK
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
