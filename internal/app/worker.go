package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/amqp"
	"github.com/heartmarshall/studyhabit-backend/internal/config"
)

// ErrQueueDisabled is returned by RunRecalcWorker when amqp.enabled is false.
var ErrQueueDisabled = errors.New("amqp is disabled in config")

// RunRecalcWorker consumes recalculation requests until ctx is cancelled.
// When metrics are enabled they are served on the configured server port.
func RunRecalcWorker(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)
	if !cfg.AMQP.Enabled {
		return ErrQueueDisabled
	}

	inf, err := OpenInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer inf.Close()

	svc := NewStudyService(logger, cfg.Study, inf)
	consumer := amqp.NewConsumer(amqp.ConsumerConfig{
		URL:      cfg.AMQP.URL,
		Queue:    cfg.AMQP.RecalcQueue,
		Prefetch: cfg.AMQP.Prefetch,
	}, svc, inf.Metrics, logger)

	logger.Info("recalc worker started", slog.String("queue", cfg.AMQP.RecalcQueue))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return consumer.Run(gctx) })

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("GET "+cfg.Metrics.Path, inf.Metrics.Handler())
		srv := &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:           mux,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
		}
		g.Go(func() error { return serve(gctx, srv, cfg.Server, logger) })
	}

	return g.Wait()
}

// RecalculateBatch rebuilds derived data for one user, or for every user
// with sessions or stats when userID is uuid.Nil.
func RecalculateBatch(ctx context.Context, cfg *config.Config, logger *slog.Logger, userID uuid.UUID) error {
	inf, err := OpenInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer inf.Close()

	svc := NewStudyService(logger, cfg.Study, inf)
	start := time.Now()

	if userID != uuid.Nil {
		result, err := svc.RecalculateUser(ctx, userID)
		if err != nil {
			return err
		}
		logger.Info("recalculation completed",
			slog.String("user_id", userID.String()),
			slog.Int("total_sessions", result.Stats.TotalSessions),
			slog.Int("current_streak", result.Stats.CurrentStreak),
			slog.Duration("took", time.Since(start)),
		)
		return nil
	}

	users, err := svc.RecalculateAll(ctx)
	logger.Info("batch recalculation finished",
		slog.Int("users", users),
		slog.Bool("with_errors", err != nil),
		slog.Duration("took", time.Since(start)),
	)
	return err
}
