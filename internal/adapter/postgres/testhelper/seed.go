package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// SeedSession inserts a session of the given length starting at start (UTC
// study date) for userID.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, subject string, start time.Time, minutes int) domain.StudySession {
	t.Helper()

	start = start.UTC().Truncate(time.Microsecond)
	s := domain.StudySession{
		ID:              uuid.New(),
		UserID:          userID,
		Subject:         subject,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		StudyDate:       domain.DateOf(start, time.UTC),
		DayOfWeek:       start.Weekday().String(),
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_sessions (id, user_id, subject, start_time, end_time, duration_minutes, study_date, day_of_week, goal, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.UserID, s.Subject, s.StartTime, s.EndTime, s.DurationMinutes, s.StudyDate, s.DayOfWeek, s.Goal, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}
	return s
}

// SeedPlan inserts an incomplete plan for userID on date.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, target int, date time.Time) domain.StudyPlan {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.StudyPlan{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetMinutes: target,
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_plans (id, user_id, title, target_minutes, date, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, false, $6, $7)`,
		p.ID, p.UserID, p.Title, p.TargetMinutes, p.Date, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan: %v", err)
	}
	return p
}
