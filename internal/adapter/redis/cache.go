// Package redis implements the read-through progress cache on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

const (
	kindStats  = "stats"
	kindWeekly = "weekly"
)

// LookupObserver is notified of cache hits and misses.
type LookupObserver interface {
	CacheHit(kind string)
	CacheMiss(kind string)
}

// Cache stores derived progress views as JSON with a TTL.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
	obs    LookupObserver
}

// Options configure the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewClient creates a client and checks connectivity.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

// New wraps client. obs may be nil.
func New(client *goredis.Client, ttl time.Duration, obs LookupObserver) *Cache {
	return &Cache{client: client, ttl: ttl, obs: obs}
}

// Ping checks the connection; used by the health endpoint.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func statsKey(userID uuid.UUID) string {
	return "study:stats:" + userID.String()
}

func weeklyKey(userID uuid.UUID, weekStart time.Time) string {
	return "study:weekly:" + userID.String() + ":" + weekStart.Format(time.DateOnly)
}

func weeklyPattern(userID uuid.UUID) string {
	return "study:weekly:" + userID.String() + ":*"
}

// GetStats returns the stats cached for userID on the given study day, if any.
// Stats are a hash per user with one field per day.
func (c *Cache) GetStats(ctx context.Context, userID uuid.UUID, day time.Time) (domain.StudyStats, bool, error) {
	var s domain.StudyStats
	key := statsKey(userID)
	raw, err := c.client.HGet(ctx, key, day.Format(time.DateOnly)).Bytes()
	ok, err := c.decode(kindStats, key, raw, err, &s)
	return s, ok, err
}

// SetStats caches s for the given study day, replacing entries of other days.
func (c *Cache) SetStats(ctx context.Context, s domain.StudyStats, day time.Time) error {
	key := statsKey(s.UserID)
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, day.Format(time.DateOnly), raw)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// GetWeekly returns the cached chart for the week starting at weekStart.
func (c *Cache) GetWeekly(ctx context.Context, userID uuid.UUID, weekStart time.Time) (domain.WeeklyProgress, bool, error) {
	var p domain.WeeklyProgress
	ok, err := c.get(ctx, kindWeekly, weeklyKey(userID, weekStart), &p)
	return p, ok, err
}

// SetWeekly caches p.
func (c *Cache) SetWeekly(ctx context.Context, userID uuid.UUID, p domain.WeeklyProgress) error {
	return c.set(ctx, weeklyKey(userID, p.WeekStart), p)
}

// Invalidate drops the user's stats and the given weeks. With no weeks it
// drops every cached week of the user.
func (c *Cache) Invalidate(ctx context.Context, userID uuid.UUID, weekStarts ...time.Time) error {
	keys := []string{statsKey(userID)}

	if len(weekStarts) == 0 {
		iter := c.client.Scan(ctx, 0, weeklyPattern(userID), 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("scan weekly keys: %w", err)
		}
	}
	for _, ws := range weekStarts {
		keys = append(keys, weeklyKey(userID, ws))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache keys: %w", err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, kind, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	return c.decode(kind, key, raw, err, dst)
}

// decode interprets the result of a read: goredis.Nil is a miss.
func (c *Cache) decode(kind, key string, raw []byte, err error, dst any) (bool, error) {
	if errors.Is(err, goredis.Nil) {
		c.miss(kind)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// A stale encoding is treated as a miss and overwritten on the next set.
		c.miss(kind)
		return false, nil
	}
	c.hit(kind)
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) hit(kind string) {
	if c.obs != nil {
		c.obs.CacheHit(kind)
	}
}

func (c *Cache) miss(kind string) {
	if c.obs != nil {
		c.obs.CacheMiss(kind)
	}
}
