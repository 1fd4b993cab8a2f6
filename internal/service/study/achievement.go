package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// ListAchievements returns the whole catalogue with the caller's unlocks.
func (s *Service) ListAchievements(ctx context.Context) ([]domain.AchievementStatus, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.achievements.List(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	byKey := make(map[domain.AchievementKey]domain.UnlockedAchievement, len(unlocked))
	for _, u := range unlocked {
		byKey[u.Key] = u
	}

	out := make([]domain.AchievementStatus, len(domain.AchievementCatalogue))
	for i, a := range domain.AchievementCatalogue {
		out[i] = domain.AchievementStatus{Achievement: a}
		if u, ok := byKey[a.Key]; ok {
			at := u.UnlockedAt
			out[i].Unlocked = true
			out[i].UnlockedAt = &at
		}
	}
	return out, nil
}
