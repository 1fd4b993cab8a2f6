// Package stats persists the per-user StudyStats summary.
package stats

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Repo provides stats persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const statsColumns = `user_id, total_minutes, total_sessions, current_streak, last_study_date, average_session_minutes, updated_at`

// getOrCreateSQL inserts a zero row when absent. The no-op update makes
// RETURNING yield the existing row on conflict.
const getOrCreateSQL = `
INSERT INTO study_stats (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING ` + statsColumns

// applySessionSQL is the single-statement atomic increment used on every new
// session. Concurrent sessions for one user serialize on the row lock.
const applySessionSQL = `
INSERT INTO study_stats (user_id, total_minutes, total_sessions, last_study_date, average_session_minutes, updated_at)
VALUES ($1, $2, 1, $3, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
    total_minutes           = study_stats.total_minutes + EXCLUDED.total_minutes,
    total_sessions          = study_stats.total_sessions + 1,
    last_study_date         = EXCLUDED.last_study_date,
    average_session_minutes = round((study_stats.total_minutes + EXCLUDED.total_minutes)::numeric
                                    / (study_stats.total_sessions + 1))::int,
    updated_at              = EXCLUDED.updated_at
RETURNING ` + statsColumns

const setStreakSQL = `
INSERT INTO study_stats (user_id, current_streak, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
    current_streak = EXCLUDED.current_streak,
    updated_at     = EXCLUDED.updated_at`

const replaceSQL = `
INSERT INTO study_stats (user_id, total_minutes, total_sessions, current_streak, last_study_date, average_session_minutes, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
    total_minutes           = EXCLUDED.total_minutes,
    total_sessions          = EXCLUDED.total_sessions,
    current_streak          = EXCLUDED.current_streak,
    last_study_date         = EXCLUDED.last_study_date,
    average_session_minutes = EXCLUDED.average_session_minutes,
    updated_at              = EXCLUDED.updated_at
RETURNING ` + statsColumns

type row struct {
	UserID                uuid.UUID  `db:"user_id"`
	TotalMinutes          int        `db:"total_minutes"`
	TotalSessions         int        `db:"total_sessions"`
	CurrentStreak         int        `db:"current_streak"`
	LastStudyDate         *time.Time `db:"last_study_date"`
	AverageSessionMinutes int        `db:"average_session_minutes"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.StudyStats {
	return domain.StudyStats{
		UserID:                r.UserID,
		TotalMinutes:          r.TotalMinutes,
		TotalSessions:         r.TotalSessions,
		CurrentStreak:         r.CurrentStreak,
		LastStudyDate:         r.LastStudyDate,
		AverageSessionMinutes: r.AverageSessionMinutes,
		UpdatedAt:             r.UpdatedAt,
	}
}

// GetOrCreate returns the user's stats, creating a zeroed record if needed.
func (r *Repo) GetOrCreate(ctx context.Context, userID uuid.UUID) (domain.StudyStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getOrCreateSQL, userID); err != nil {
		return domain.StudyStats{}, postgres.MapError(err, "stats", userID)
	}
	return out.toDomain(), nil
}

// ApplySession atomically adds one session of the given length.
func (r *Repo) ApplySession(ctx context.Context, userID uuid.UUID, minutes int, at time.Time) (domain.StudyStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	at = at.UTC().Truncate(time.Microsecond)
	if err := pgxscan.Get(ctx, q, &out, applySessionSQL, userID, minutes, at); err != nil {
		return domain.StudyStats{}, postgres.MapError(err, "stats", userID)
	}
	return out.toDomain(), nil
}

// SetStreak stores the current streak, creating the record if needed.
func (r *Repo) SetStreak(ctx context.Context, userID uuid.UUID, streak int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, setStreakSQL, userID, streak, time.Now().UTC()); err != nil {
		return postgres.MapError(err, "stats", userID)
	}
	return nil
}

// Replace overwrites every counter with s.
func (r *Repo) Replace(ctx context.Context, s domain.StudyStats) (domain.StudyStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var last *time.Time
	if s.LastStudyDate != nil {
		t := s.LastStudyDate.UTC().Truncate(time.Microsecond)
		last = &t
	}

	var out row
	err := pgxscan.Get(ctx, q, &out, replaceSQL,
		s.UserID, s.TotalMinutes, s.TotalSessions, s.CurrentStreak, last,
		s.AverageSessionMinutes, time.Now().UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return domain.StudyStats{}, postgres.MapError(err, "stats", s.UserID)
	}
	return out.toDomain(), nil
}
