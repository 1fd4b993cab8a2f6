package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// CreatePlan stores a new, incomplete plan. A missing date means today.
func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput) (*domain.StudyPlan, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := s.today()
	if input.Date != nil {
		date = *input.Date
	}

	now := s.now()
	plan, err := s.plans.Create(ctx, &domain.StudyPlan{
		ID:            uuid.New(),
		UserID:        uid,
		Title:         strings.TrimSpace(input.Title),
		TargetMinutes: input.TargetMinutes,
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan created",
		"user_id", uid,
		"plan_id", plan.ID,
		"target_minutes", plan.TargetMinutes,
	)
	return plan, nil
}

// ListTodayPlans returns today's plans with the minutes logged for each.
// A plan whose target is met is reported and persisted as completed.
func (s *Service) ListTodayPlans(ctx context.Context) ([]domain.PlanProgress, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()

	plans, err := s.plans.ListByDate(ctx, uid, today)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	if len(plans) == 0 {
		return []domain.PlanProgress{}, nil
	}

	sessions, err := s.sessions.ListByDate(ctx, uid, today)
	if err != nil {
		return nil, fmt.Errorf("list today's sessions: %w", err)
	}
	totals := domain.MinutesBySubject(sessions)

	out := make([]domain.PlanProgress, 0, len(plans))
	var reached []uuid.UUID
	for _, p := range plans {
		actual := totals[domain.SubjectKey(p.Title)]
		plan := *p
		if !plan.Completed && plan.Reached(actual) {
			plan.Completed = true
			reached = append(reached, plan.ID)
		}
		out = append(out, domain.PlanProgress{Plan: plan, ActualDuration: actual})
	}

	if len(reached) > 0 {
		if _, err := s.plans.MarkCompleted(ctx, uid, reached); err != nil {
			s.log.WarnContext(ctx, "persist derived plan completion", "user_id", uid, "error", err)
		}
	}

	return out, nil
}

// UpdatePlan applies a partial update to one of the caller's plans.
func (s *Service) UpdatePlan(ctx context.Context, planID uuid.UUID, input UpdatePlanInput) (*domain.StudyPlan, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.plans.Update(ctx, uid, planID, input.patch())
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return plan, nil
}

// TogglePlan flips a plan's completion flag regardless of logged minutes.
func (s *Service) TogglePlan(ctx context.Context, planID uuid.UUID) (*domain.StudyPlan, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.Toggle(ctx, uid, planID)
	if err != nil {
		return nil, fmt.Errorf("toggle plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan toggled", "user_id", uid, "plan_id", planID, "completed", plan.Completed)
	return plan, nil
}

// DeletePlan removes one of the caller's plans.
func (s *Service) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	if err := s.plans.Delete(ctx, uid, planID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan deleted", "user_id", uid, "plan_id", planID)
	return nil
}

// autoCompletePlans marks the incomplete plans on date whose title matches
// subject once that day's minutes for the subject reach their target.
func (s *Service) autoCompletePlans(ctx context.Context, uid uuid.UUID, date time.Time, subject string) (int, error) {
	plans, err := s.plans.ListIncompleteByDate(ctx, uid, date)
	if err != nil {
		return 0, fmt.Errorf("list incomplete plans: %w", err)
	}

	key := domain.SubjectKey(subject)
	var matching []*domain.StudyPlan
	for _, p := range plans {
		if domain.SubjectKey(p.Title) == key {
			matching = append(matching, p)
		}
	}
	if len(matching) == 0 {
		return 0, nil
	}

	sessions, err := s.sessions.ListByDate(ctx, uid, date)
	if err != nil {
		return 0, fmt.Errorf("list sessions for %s: %w", dateKey(date), err)
	}
	actual := domain.MinutesBySubject(sessions)[key]

	var reached []uuid.UUID
	for _, p := range matching {
		if p.Reached(actual) {
			reached = append(reached, p.ID)
		}
	}

	n, err := s.plans.MarkCompleted(ctx, uid, reached)
	if err != nil {
		return 0, fmt.Errorf("mark plans completed: %w", err)
	}
	return n, nil
}

// completeReachedPlans upgrades every incomplete plan whose logged minutes
// meet its target. Completed plans are left alone.
func (s *Service) completeReachedPlans(ctx context.Context, uid uuid.UUID, minutes map[string]map[string]int) (int, error) {
	plans, err := s.plans.ListIncomplete(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("list incomplete plans: %w", err)
	}

	var reached []uuid.UUID
	for _, p := range plans {
		if p.Reached(minutes[dateKey(p.Date)][domain.SubjectKey(p.Title)]) {
			reached = append(reached, p.ID)
		}
	}

	n, err := s.plans.MarkCompleted(ctx, uid, reached)
	if err != nil {
		return 0, fmt.Errorf("mark plans completed: %w", err)
	}
	return n, nil
}
