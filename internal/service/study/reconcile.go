package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Names of the reconciliation steps run after a session is stored.
const (
	StepStats        = "stats"
	StepStreakDay    = "streak_day"
	StepStreak       = "streak"
	StepPlans        = "plans"
	StepAchievements = "achievements"
	StepCache        = "cache"
)

// reconcileStep is one idempotent derived-data update. Steps run in order and
// a failing step does not stop the ones after it.
type reconcileStep struct {
	name string
	run  func(ctx context.Context) error
}

// reconcileState carries values produced by earlier steps to later ones.
type reconcileState struct {
	stats     *domain.StudyStats
	streak    int
	streakSet bool
}

func (s *Service) reconcileSession(ctx context.Context, session *domain.StudySession) {
	uid := session.UserID
	var state reconcileState

	steps := []reconcileStep{
		{StepStats, func(ctx context.Context) error {
			st, err := s.stats.ApplySession(ctx, uid, session.DurationMinutes, s.now())
			if err != nil {
				return err
			}
			state.stats = &st
			return nil
		}},
		{StepStreakDay, func(ctx context.Context) error {
			return s.streaks.UpsertDay(ctx, uid, session.StudyDate)
		}},
		{StepStreak, func(ctx context.Context) error {
			streak, err := s.recomputeStreak(ctx, uid)
			if err != nil {
				return err
			}
			state.streak, state.streakSet = streak, true
			return nil
		}},
		{StepPlans, func(ctx context.Context) error {
			_, err := s.autoCompletePlans(ctx, uid, session.StudyDate, session.Subject)
			return err
		}},
		{StepAchievements, func(ctx context.Context) error {
			keys := domain.SessionAchievements(session, s.localHour(session.StartTime))
			if state.stats != nil {
				st := *state.stats
				if state.streakSet {
					st.CurrentStreak = state.streak
				}
				keys = append(keys, domain.StatsAchievements(st)...)
			}
			_, err := s.achievements.Unlock(ctx, uid, dedupeKeys(keys), s.now())
			return err
		}},
		{StepCache, func(ctx context.Context) error {
			return s.cache.Invalidate(ctx, uid, s.weekStartOf(session.StudyDate))
		}},
	}

	var failed []string
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			failed = append(failed, step.name)
			s.observer.ReconcileFailed(step.name)
			s.log.WarnContext(ctx, "reconcile step failed",
				"user_id", uid,
				"session_id", session.ID,
				"step", step.name,
				"error", err,
			)
		}
	}

	if len(failed) > 0 {
		s.requestRepair(ctx, uid, fmt.Sprintf("reconcile failed: %v", failed))
	}
}

// requestRepair asks the recalculation worker to rebuild the user's derived
// data. Without a publisher the next Recalculate call repairs it.
func (s *Service) requestRepair(ctx context.Context, uid uuid.UUID, reason string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecalc(ctx, uid, reason); err != nil {
		s.log.ErrorContext(ctx, "publish recalculation request",
			"user_id", uid,
			"reason", reason,
			"error", err,
		)
	}
}

func dedupeKeys(keys []domain.AchievementKey) []domain.AchievementKey {
	seen := make(map[domain.AchievementKey]bool, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
