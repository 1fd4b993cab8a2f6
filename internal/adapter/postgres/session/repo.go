// Package session implements the append-only study session ledger on PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var sessionColumns = []string{
	"id", "user_id", "subject", "start_time", "end_time", "duration_minutes",
	"study_date", "day_of_week", "goal", "created_at",
}

const createSQL = `
INSERT INTO study_sessions (id, user_id, subject, start_time, end_time, duration_minutes, study_date, day_of_week, goal, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, user_id, subject, start_time, end_time, duration_minutes, study_date, day_of_week, goal, created_at`

const listAllSQL = `
SELECT id, user_id, subject, start_time, end_time, duration_minutes, study_date, day_of_week, goal, created_at
FROM study_sessions
WHERE user_id = $1
ORDER BY start_time ASC, id ASC`

const listUserIDsSQL = `
SELECT user_id FROM study_sessions
UNION
SELECT user_id FROM study_stats
ORDER BY user_id`

// row mirrors a study_sessions row for pgxscan.
type row struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Subject         string    `db:"subject"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	DurationMinutes int       `db:"duration_minutes"`
	StudyDate       time.Time `db:"study_date"`
	DayOfWeek       string    `db:"day_of_week"`
	Goal            string    `db:"goal"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.StudySession {
	return &domain.StudySession{
		ID:              r.ID,
		UserID:          r.UserID,
		Subject:         r.Subject,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		StudyDate:       r.StudyDate,
		DayOfWeek:       r.DayOfWeek,
		Goal:            r.Goal,
		CreatedAt:       r.CreatedAt,
	}
}

func toDomainList(rows []row) []*domain.StudySession {
	out := make([]*domain.StudySession, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

// Create appends a session to the ledger and returns the stored row.
func (r *Repo) Create(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL,
		s.ID,
		s.UserID,
		s.Subject,
		s.StartTime.UTC().Truncate(time.Microsecond),
		s.EndTime.UTC().Truncate(time.Microsecond),
		s.DurationMinutes,
		s.StudyDate,
		s.DayOfWeek,
		s.Goal,
		s.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}

	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read
// ---------------------------------------------------------------------------

// List returns the user's sessions newest first, optionally bounded by an
// inclusive study date range.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.SessionFilter) ([]*domain.StudySession, error) {
	qb := psql.Select(sessionColumns...).
		From("study_sessions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("study_date DESC", "start_time DESC")

	if f.From != nil {
		qb = qb.Where(sq.GtOrEq{"study_date": *f.From})
	}
	if f.To != nil {
		qb = qb.Where(sq.LtOrEq{"study_date": *f.To})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}

	return r.selectSessions(ctx, qb, "list sessions")
}

// ListByDate returns the sessions whose study date equals date, oldest first.
func (r *Repo) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudySession, error) {
	return r.ListRange(ctx, userID, date, date)
}

// ListRange returns sessions with from <= study_date <= to, oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.StudySession, error) {
	qb := psql.Select(sessionColumns...).
		From("study_sessions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"study_date": from}).
		Where(sq.LtOrEq{"study_date": to}).
		OrderBy("start_time ASC")

	return r.selectSessions(ctx, qb, "list sessions in range")
}

// ListAll returns the user's full ledger in chronological order.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listAllSQL, userID); err != nil {
		return nil, fmt.Errorf("list all sessions: %w", err)
	}
	return toDomainList(rows), nil
}

// ListUserIDs returns every user that has sessions or a stats record.
func (r *Repo) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, listUserIDsSQL); err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

func (r *Repo) selectSessions(ctx context.Context, qb sq.SelectBuilder, op string) ([]*domain.StudySession, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainList(rows), nil
}
