package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// calculateStreak counts consecutive days ending today, or ending yesterday
// when today has no entry yet. days must be sorted most recent first.
func calculateStreak(days []time.Time, today time.Time) int {
	// Entries dated after today (client clock skew) do not count.
	for len(days) > 0 && days[0].After(today) {
		days = days[1:]
	}
	if len(days) == 0 {
		return 0
	}

	expected := today
	if !domain.SameDate(days[0], today) {
		expected = domain.AddDays(today, -1)
	}

	streak := 0
	for _, d := range days {
		if !domain.SameDate(d, expected) {
			break
		}
		streak++
		expected = domain.AddDays(expected, -1)
	}
	return streak
}

// recomputeStreak derives the streak from StreakHistory and stores it.
func (s *Service) recomputeStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	days, err := s.streaks.ListStudiedDays(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("list studied days: %w", err)
	}

	streak := calculateStreak(days, s.today())
	if err := s.stats.SetStreak(ctx, uid, streak); err != nil {
		return 0, fmt.Errorf("set streak: %w", err)
	}
	return streak, nil
}
