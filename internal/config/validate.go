package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 (got %v)", c.Redis.TTL)
	}

	if c.AMQP.Enabled {
		if c.AMQP.URL == "" {
			return fmt.Errorf("amqp.url is required when amqp is enabled")
		}
		if c.AMQP.RecalcQueue == "" {
			return fmt.Errorf("amqp.recalc_queue is required when amqp is enabled")
		}
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (s *StudyConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	wd, err := domain.ParseWeekday(s.WeekStartRaw)
	if err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	s.WeekStart = wd

	if s.DefaultSessionLimit <= 0 {
		return fmt.Errorf("default_session_limit must be > 0 (got %d)", s.DefaultSessionLimit)
	}
	if s.MaxSessionLimit < s.DefaultSessionLimit {
		return fmt.Errorf("max_session_limit must be >= default_session_limit (got %d < %d)",
			s.MaxSessionLimit, s.DefaultSessionLimit)
	}
	if s.DurationTolerance < 0 {
		return fmt.Errorf("duration_tolerance must be >= 0 (got %v)", s.DurationTolerance)
	}

	return nil
}
