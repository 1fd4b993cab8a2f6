package study

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// GetStats returns the caller's stats, creating a zeroed record on first use.
// The stored streak is checked against StreakHistory so that a streak broken
// by inactivity reads as 0 without waiting for the next session.
func (s *Service) GetStats(ctx context.Context) (domain.StudyStats, error) {
	uid, err := userID(ctx)
	if err != nil {
		return domain.StudyStats{}, err
	}
	today := s.today()

	if cached, ok, err := s.cache.GetStats(ctx, uid, today); err != nil {
		s.log.WarnContext(ctx, "stats cache read failed", "user_id", uid, "error", err)
	} else if ok {
		return s.civilStats(cached), nil
	}

	stats, err := s.stats.GetOrCreate(ctx, uid)
	if err != nil {
		return domain.StudyStats{}, fmt.Errorf("get stats: %w", err)
	}

	if stats.CurrentStreak > 0 {
		streak, err := s.currentStreak(ctx, uid)
		if err != nil {
			return domain.StudyStats{}, err
		}
		if streak != stats.CurrentStreak {
			stats.CurrentStreak = streak
			if err := s.stats.SetStreak(ctx, uid, streak); err != nil {
				s.log.WarnContext(ctx, "persist decayed streak", "user_id", uid, "error", err)
			}
		}
	}

	if err := s.cache.SetStats(ctx, stats, today); err != nil {
		s.log.WarnContext(ctx, "stats cache write failed", "user_id", uid, "error", err)
	}
	return s.civilStats(stats), nil
}

// civilStats reports LastStudyDate as the civil date in the study timezone.
// Storage keeps the instant.
func (s *Service) civilStats(st domain.StudyStats) domain.StudyStats {
	if st.LastStudyDate != nil {
		d := s.studyDate(*st.LastStudyDate)
		st.LastStudyDate = &d
	}
	return st
}

func (s *Service) currentStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	days, err := s.streaks.ListStudiedDays(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("list studied days: %w", err)
	}
	return calculateStreak(days, s.today()), nil
}

// Recalculate rebuilds the caller's derived data from the session ledger.
func (s *Service) Recalculate(ctx context.Context) (domain.Recalculation, error) {
	uid, err := userID(ctx)
	if err != nil {
		return domain.Recalculation{}, err
	}
	return s.RecalculateUser(ctx, uid)
}

// RecalculateUser rebuilds stats, StreakHistory, plan completion and
// achievements for uid from its full ledger, in one transaction. Running it
// twice yields the same state.
func (s *Service) RecalculateUser(ctx context.Context, uid uuid.UUID) (domain.Recalculation, error) {
	var result domain.Recalculation

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sessions, err := s.sessions.ListAll(ctx, uid)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		ledger := summarize(sessions)

		created, err := s.streaks.Rebuild(ctx, uid, ledger.dates)
		if err != nil {
			return fmt.Errorf("rebuild streak history: %w", err)
		}
		result.StreakDaysCreated = created

		desc := make([]time.Time, len(ledger.dates))
		for i, d := range ledger.dates {
			desc[len(desc)-1-i] = d
		}

		stats, err := s.stats.Replace(ctx, domain.StudyStats{
			UserID:                uid,
			TotalMinutes:          ledger.totalMinutes,
			TotalSessions:         len(sessions),
			CurrentStreak:         calculateStreak(desc, s.today()),
			LastStudyDate:         ledger.lastStudy,
			AverageSessionMinutes: domain.AverageMinutes(ledger.totalMinutes, len(sessions)),
		})
		if err != nil {
			return fmt.Errorf("replace stats: %w", err)
		}
		result.Stats = s.civilStats(stats)

		completed, err := s.completeReachedPlans(ctx, uid, ledger.minutes)
		if err != nil {
			return err
		}
		result.PlansCompleted = completed

		keys := domain.StatsAchievements(stats)
		for _, sess := range sessions {
			keys = append(keys, domain.SessionAchievements(sess, s.localHour(sess.StartTime))...)
		}
		unlocked, err := s.achievements.Unlock(ctx, uid, dedupeKeys(keys), s.now())
		if err != nil {
			return fmt.Errorf("unlock achievements: %w", err)
		}
		result.AchievementsUnlocked = unlocked

		return nil
	})
	if err != nil {
		return domain.Recalculation{}, fmt.Errorf("recalculate user %s: %w", uid, err)
	}

	if err := s.cache.Invalidate(ctx, uid); err != nil {
		s.log.WarnContext(ctx, "invalidate cache after recalculation", "user_id", uid, "error", err)
	}
	s.observer.Recalculated()

	s.log.InfoContext(ctx, "stats recalculated",
		"user_id", uid,
		"total_sessions", result.Stats.TotalSessions,
		"total_minutes", result.Stats.TotalMinutes,
		"streak", result.Stats.CurrentStreak,
		"streak_days_created", result.StreakDaysCreated,
		"plans_completed", result.PlansCompleted,
		"achievements_unlocked", result.AchievementsUnlocked,
	)

	return result, nil
}

// RecalculateAll recalculates every known user and returns how many
// succeeded. Per-user failures are joined into the returned error.
func (s *Service) RecalculateAll(ctx context.Context) (int, error) {
	ids, err := s.sessions.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	var (
		ok   int
		errs []error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.RecalculateUser(ctx, id); err != nil {
			errs = append(errs, err)
			continue
		}
		ok++
	}
	return ok, errors.Join(errs...)
}

// ledgerSummary is what a full scan of the ledger yields.
type ledgerSummary struct {
	totalMinutes int
	lastStudy    *time.Time
	// dates are the distinct study dates, ascending.
	dates []time.Time
	// minutes is keyed by dateKey, then by SubjectKey.
	minutes map[string]map[string]int
}

func summarize(sessions []*domain.StudySession) ledgerSummary {
	sum := ledgerSummary{minutes: make(map[string]map[string]int)}

	for _, sess := range sessions {
		sum.totalMinutes += sess.DurationMinutes

		if sum.lastStudy == nil || sess.StartTime.After(*sum.lastStudy) {
			t := sess.StartTime
			sum.lastStudy = &t
		}

		bySubject, ok := sum.minutes[dateKey(sess.StudyDate)]
		if !ok {
			bySubject = make(map[string]int)
			sum.minutes[dateKey(sess.StudyDate)] = bySubject
			sum.dates = append(sum.dates, sess.StudyDate)
		}
		bySubject[domain.SubjectKey(sess.Subject)] += sess.DurationMinutes
	}

	sort.Slice(sum.dates, func(i, j int) bool { return sum.dates[i].Before(sum.dates[j]) })
	return sum
}
