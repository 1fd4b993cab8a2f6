package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyhabit-backend/internal/auth"
	"github.com/heartmarshall/studyhabit-backend/internal/config"
	"github.com/heartmarshall/studyhabit-backend/internal/pomodoro"
	"github.com/heartmarshall/studyhabit-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyhabit-backend/internal/transport/rest"
)

// Run is the API server entry point. It blocks until ctx is cancelled and
// the server has drained.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Study.Location.String()),
		slog.String("week_start", cfg.Study.WeekStart.String()),
	)

	inf, err := OpenInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer inf.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Logger:      logger,
		Study:       rest.NewStudyHandler(NewStudyService(logger, cfg.Study, inf), pomodoro.DefaultConfig(), logger),
		Health:      newHealthHandler(inf),
		Metrics:     inf.Metrics,
		Tokens:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		MetricsCfg:  cfg.Metrics,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

func newHealthHandler(inf *Infra) *rest.HealthHandler {
	h := rest.NewHealthHandler(inf.Pool, Version)
	if inf.Cache != nil {
		h.AddComponent("redis", inf.Cache)
	}
	if inf.Publisher != nil {
		h.AddComponent("amqp", inf.Publisher)
	}
	return h
}

// serve runs srv until ctx is cancelled, then shuts it down within
// cfg.ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
