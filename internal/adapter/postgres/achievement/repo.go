// Package achievement persists write-once achievement unlocks.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Repo provides achievement log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new achievement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const unlockSQL = `
INSERT INTO achievement_log (user_id, achievement_key, unlocked_at)
SELECT $1, k, $3 FROM unnest($2::text[]) AS k
ON CONFLICT (user_id, achievement_key) DO NOTHING`

const listSQL = `
SELECT achievement_key, unlocked_at
FROM achievement_log
WHERE user_id = $1
ORDER BY unlocked_at ASC, achievement_key ASC`

type row struct {
	Key        string    `db:"achievement_key"`
	UnlockedAt time.Time `db:"unlocked_at"`
}

// Unlock records keys that are not yet unlocked and returns how many were new.
func (r *Repo) Unlock(ctx context.Context, userID uuid.UUID, keys []domain.AchievementKey, at time.Time) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	raw := make([]string, len(keys))
	for i, k := range keys {
		raw[i] = string(k)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, unlockSQL, userID, raw, at.UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, postgres.MapError(err, "achievements", userID)
	}
	return int(ct.RowsAffected()), nil
}

// List returns the user's unlocked achievements, oldest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	out := make([]domain.UnlockedAchievement, len(rows))
	for i, r := range rows {
		out[i] = domain.UnlockedAchievement{Key: domain.AchievementKey(r.Key), UnlockedAt: r.UnlockedAt}
	}
	return out, nil
}
