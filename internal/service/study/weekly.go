package study

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// WeeklyProgress returns hours studied per day for the week containing
// today + 7*weekOffset days.
func (s *Service) WeeklyProgress(ctx context.Context, weekOffset int) (domain.WeeklyProgress, error) {
	uid, err := userID(ctx)
	if err != nil {
		return domain.WeeklyProgress{}, err
	}

	if err := validateWeekOffset(weekOffset); err != nil {
		return domain.WeeklyProgress{}, err
	}

	weekStart := s.weekStartOf(domain.AddDays(s.today(), 7*weekOffset))

	if cached, ok, err := s.cache.GetWeekly(ctx, uid, weekStart); err != nil {
		s.log.WarnContext(ctx, "weekly cache read failed", "user_id", uid, "error", err)
	} else if ok {
		return cached, nil
	}

	weekEnd := domain.AddDays(weekStart, 6)
	sessions, err := s.sessions.ListRange(ctx, uid, weekStart, weekEnd)
	if err != nil {
		return domain.WeeklyProgress{}, fmt.Errorf("list week sessions: %w", err)
	}

	progress := buildWeek(weekStart, sessions)

	if err := s.cache.SetWeekly(ctx, uid, progress); err != nil {
		s.log.WarnContext(ctx, "weekly cache write failed", "user_id", uid, "error", err)
	}
	return progress, nil
}

func buildWeek(weekStart time.Time, sessions []*domain.StudySession) domain.WeeklyProgress {
	minutes := make(map[string]int, 7)
	for _, sess := range sessions {
		minutes[dateKey(sess.StudyDate)] += sess.DurationMinutes
	}

	days := make([]domain.DayProgress, 7)
	for i := range days {
		date := domain.AddDays(weekStart, i)
		days[i] = domain.DayProgress{
			Day:   domain.ShortDayName(date.Weekday()),
			Date:  date,
			Hours: roundHours(minutes[dateKey(date)]),
		}
	}
	return domain.WeeklyProgress{WeekStart: weekStart, Days: days}
}

// roundHours converts minutes to hours rounded to one decimal.
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
