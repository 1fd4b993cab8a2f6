package study

import (
	"strings"
	"time"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

const (
	maxSubjectLength = 200
	maxGoalLength    = 1000
	maxTitleLength   = 200
	maxTargetMinutes = 24 * 60
	maxWeekOffset    = 520
)

// RecordSessionInput holds a finished session posted by the client.
// DurationMinutes is a pointer so that a missing value can be told apart from 0.
type RecordSessionInput struct {
	Subject         string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes *int
	Goal            string
}

// Validate checks all fields and collects all errors.
func (i *RecordSessionInput) Validate() error {
	var errs []domain.FieldError

	subject := strings.TrimSpace(i.Subject)
	if subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	} else if len(subject) > maxSubjectLength {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 200 characters"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "required"})
	}
	if !i.StartTime.IsZero() && !i.EndTime.IsZero() && i.EndTime.Before(i.StartTime) {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "must not be before startTime"})
	}
	if i.DurationMinutes == nil {
		errs = append(errs, domain.FieldError{Field: "durationMinutes", Message: "required"})
	} else if *i.DurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "durationMinutes", Message: "must be non-negative"})
	}
	if len(i.Goal) > maxGoalLength {
		errs = append(errs, domain.FieldError{Field: "goal", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateDurationMatch rejects a duration that disagrees with the interval
// by more than tolerance.
func (i *RecordSessionInput) validateDurationMatch(tolerance time.Duration) error {
	interval := i.EndTime.Sub(i.StartTime)
	diff := interval - time.Duration(*i.DurationMinutes)*time.Minute
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return domain.NewValidationError("durationMinutes", "does not match endTime - startTime")
	}
	return nil
}

// ListSessionsInput holds listing parameters. Zero Limit means the default.
type ListSessionsInput struct {
	Limit int
	From  *time.Time
	To    *time.Time
}

// Validate checks all fields and collects all errors.
func (i *ListSessionsInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreatePlanInput holds a new plan. A nil Date means today.
type CreatePlanInput struct {
	Title         string
	TargetMinutes int
	Date          *time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreatePlanInput) Validate() error {
	var errs []domain.FieldError

	errs = appendTitleErrors(errs, i.Title)
	errs = appendTargetErrors(errs, i.TargetMinutes)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePlanInput holds a partial plan update.
type UpdatePlanInput struct {
	Title         *string
	TargetMinutes *int
	Completed     *bool
}

// Validate checks all fields and collects all errors.
func (i *UpdatePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.TargetMinutes != nil {
		errs = appendTargetErrors(errs, *i.TargetMinutes)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *UpdatePlanInput) patch() domain.PlanPatch {
	p := domain.PlanPatch{TargetMinutes: i.TargetMinutes, Completed: i.Completed}
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		p.Title = &t
	}
	return p
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case len(title) > maxTitleLength:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func appendTargetErrors(errs []domain.FieldError, target int) []domain.FieldError {
	switch {
	case target <= 0:
		errs = append(errs, domain.FieldError{Field: "targetMinutes", Message: "must be positive"})
	case target > maxTargetMinutes:
		errs = append(errs, domain.FieldError{Field: "targetMinutes", Message: "max 1440"})
	}
	return errs
}

func validateWeekOffset(offset int) error {
	if offset < -maxWeekOffset || offset > maxWeekOffset {
		return domain.NewValidationError("weekOffset", "out of range")
	}
	return nil
}
