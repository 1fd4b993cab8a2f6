package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/amqp"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres/achievement"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres/plan"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres/stats"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres/streak"
	"github.com/heartmarshall/studyhabit-backend/internal/adapter/redis"
	"github.com/heartmarshall/studyhabit-backend/internal/config"
	"github.com/heartmarshall/studyhabit-backend/internal/metrics"
	"github.com/heartmarshall/studyhabit-backend/internal/service/study"
)

// Infra holds the process-wide connections shared by every entry point.
// Cache and Publisher are nil when disabled in config.
type Infra struct {
	Pool      *pgxpool.Pool
	Cache     *redis.Cache
	Publisher *amqp.Publisher
	Metrics   *metrics.Metrics

	redisClient *goredis.Client
}

// OpenInfra connects to PostgreSQL and, when enabled, Redis. It applies
// migrations first if database.auto_migrate is set.
func OpenInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	inf := &Infra{Pool: pool, Metrics: metrics.New()}

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			inf.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			inf.Close()
			return nil, err
		}
		inf.redisClient = client
		inf.Cache = redis.New(client, cfg.Redis.TTL, inf.Metrics)
		logger.Info("redis cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	if cfg.AMQP.Enabled {
		inf.Publisher = amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.RecalcQueue, logger)
		logger.Info("recalc publisher enabled", slog.String("queue", cfg.AMQP.RecalcQueue))
	}

	return inf, nil
}

// Close releases every connection.
func (i *Infra) Close() {
	if i.redisClient != nil {
		_ = i.redisClient.Close()
	}
	i.Pool.Close()
}

// NewStudyService wires the repositories and optional adapters into the
// study service.
func NewStudyService(logger *slog.Logger, cfg config.StudyConfig, inf *Infra) *study.Service {
	deps := study.Deps{
		Sessions:     session.New(inf.Pool),
		Stats:        stats.New(inf.Pool),
		Streaks:      streak.New(inf.Pool),
		Plans:        plan.New(inf.Pool),
		Achievements: achievement.New(inf.Pool),
		Tx:           postgres.NewTxManager(inf.Pool),
		Observer:     inf.Metrics,
	}
	// Interface fields stay nil unless the adapter exists.
	if inf.Cache != nil {
		deps.Cache = inf.Cache
	}
	if inf.Publisher != nil {
		deps.Publisher = inf.Publisher
	}

	return study.NewService(logger, deps, study.Config{
		Location:             cfg.Location,
		WeekStart:            cfg.WeekStart,
		DefaultSessionLimit:  cfg.DefaultSessionLimit,
		MaxSessionLimit:      cfg.MaxSessionLimit,
		EnforceDurationMatch: cfg.EnforceDurationMatch,
		DurationTolerance:    cfg.DurationTolerance,
	})
}
