// Package streak persists StreakHistory: one row per (user, studied day).
package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres"
)

// Repo provides streak history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new streak repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const upsertDaySQL = `
INSERT INTO streak_history (user_id, date, studied)
VALUES ($1, $2, true)
ON CONFLICT (user_id, date) DO UPDATE SET studied = true`

const listStudiedSQL = `
SELECT date FROM streak_history
WHERE user_id = $1 AND studied
ORDER BY date DESC`

const deleteAllSQL = `DELETE FROM streak_history WHERE user_id = $1`

// UpsertDay marks date as studied. Repeating the call is a no-op.
func (r *Repo) UpsertDay(ctx context.Context, userID uuid.UUID, date time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, upsertDaySQL, userID, date); err != nil {
		return postgres.MapError(err, "streak day", userID)
	}
	return nil
}

// ListStudiedDays returns the user's studied dates, most recent first.
func (r *Repo) ListStudiedDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var dates []time.Time
	if err := pgxscan.Select(ctx, q, &dates, listStudiedSQL, userID); err != nil {
		return nil, fmt.Errorf("list studied days: %w", err)
	}
	return dates, nil
}

// Rebuild replaces the user's history with exactly dates and returns how
// many rows were written. Call inside a transaction.
func (r *Repo) Rebuild(ctx context.Context, userID uuid.UUID, dates []time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	batch.Queue(deleteAllSQL, userID)
	for _, d := range dates {
		batch.Queue(upsertDaySQL, userID, d)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	if _, err := br.Exec(); err != nil {
		return 0, fmt.Errorf("rebuild streak history: delete: %w", err)
	}
	for i := range dates {
		if _, err := br.Exec(); err != nil {
			return i, fmt.Errorf("rebuild streak history: insert %s: %w", dates[i].Format(time.DateOnly), err)
		}
	}

	return len(dates), nil
}
