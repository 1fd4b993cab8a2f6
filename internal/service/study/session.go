package study

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// RecordSession appends a finished session to the caller's ledger and then
// reconciles the derived records. A failure while reconciling never fails
// the call: the stored session is returned and a repair is requested.
func (s *Service) RecordSession(ctx context.Context, input RecordSessionInput) (*domain.StudySession, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.cfg.EnforceDurationMatch {
		if err := input.validateDurationMatch(s.cfg.DurationTolerance); err != nil {
			return nil, err
		}
	}

	now := s.now()
	session := &domain.StudySession{
		ID:              uuid.New(),
		UserID:          uid,
		Subject:         strings.TrimSpace(input.Subject),
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationMinutes: *input.DurationMinutes,
		StudyDate:       s.studyDate(input.StartTime),
		DayOfWeek:       input.StartTime.In(s.cfg.Location).Weekday().String(),
		Goal:            strings.TrimSpace(input.Goal),
		CreatedAt:       now,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.observer.SessionRecorded(created.DurationMinutes)

	// The session is stored; derived updates must not be cut short by the
	// caller going away.
	s.reconcileSession(context.WithoutCancel(ctx), created)

	s.log.InfoContext(ctx, "session recorded",
		"user_id", uid,
		"session_id", created.ID,
		"subject", created.Subject,
		"duration_minutes", created.DurationMinutes,
		"study_date", created.StudyDate.Format("2006-01-02"),
	)

	return created, nil
}

// ListSessions returns the caller's sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) ([]*domain.StudySession, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxSessionLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultSessionLimit
	}

	sessions, err := s.sessions.List(ctx, uid, domain.SessionFilter{From: input.From, To: input.To, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// ListTodaySessions returns the caller's sessions dated today, newest first.
func (s *Service) ListTodaySessions(ctx context.Context) ([]*domain.StudySession, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListByDate(ctx, uid, s.today())
	if err != nil {
		return nil, fmt.Errorf("list today's sessions: %w", err)
	}
	slices.Reverse(sessions)
	return sessions, nil
}
