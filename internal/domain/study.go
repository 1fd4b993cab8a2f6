package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// StudySession is one completed, timed interval of study. Sessions are the
// source of truth for every derived record and are never mutated.
type StudySession struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Subject         string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	// StudyDate is the civil date of StartTime in the study timezone (see DateOf).
	StudyDate time.Time
	DayOfWeek string
	Goal      string
	CreatedAt time.Time
}

// StudyStats is the per-user materialized summary of the session ledger.
type StudyStats struct {
	UserID                uuid.UUID
	TotalMinutes          int
	TotalSessions         int
	CurrentStreak         int
	LastStudyDate         *time.Time
	AverageSessionMinutes int
	UpdatedAt             time.Time
}

// ZeroStats returns an empty stats record for the user.
func ZeroStats(userID uuid.UUID) StudyStats {
	return StudyStats{UserID: userID}
}

// AverageMinutes returns round(total/sessions), or 0 when there are no sessions.
func AverageMinutes(totalMinutes, totalSessions int) int {
	if totalSessions <= 0 {
		return 0
	}
	return int(math.Round(float64(totalMinutes) / float64(totalSessions)))
}

// StreakDay marks a calendar day on which the user studied.
type StreakDay struct {
	UserID  uuid.UUID
	Date    time.Time
	Studied bool
}

// StudyPlan is a user's intention to study a subject for N minutes on a day.
type StudyPlan struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetMinutes int
	Date          time.Time
	Completed     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reached reports whether actualMinutes meets the plan target.
func (p StudyPlan) Reached(actualMinutes int) bool {
	return actualMinutes >= p.TargetMinutes
}

// PlanPatch holds the optional fields of a partial plan update.
// A nil field is left untouched.
type PlanPatch struct {
	Title         *string
	TargetMinutes *int
	Completed     *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p PlanPatch) IsEmpty() bool {
	return p.Title == nil && p.TargetMinutes == nil && p.Completed == nil
}

// PlanProgress is a plan together with the minutes actually logged for it.
type PlanProgress struct {
	Plan           StudyPlan
	ActualDuration int
}

// DayProgress is one bucket of the weekly chart.
type DayProgress struct {
	Day   string
	Date  time.Time
	Hours float64
}

// WeeklyProgress is the 7-bucket weekly chart starting at WeekStart.
type WeeklyProgress struct {
	WeekStart time.Time
	Days      []DayProgress
}

// Recalculation summarizes a full rebuild of derived data.
type Recalculation struct {
	Stats                StudyStats
	StreakDaysCreated    int
	PlansCompleted       int
	AchievementsUnlocked int
}

// MinutesBySubject sums session durations per normalized subject.
func MinutesBySubject(sessions []*StudySession) map[string]int {
	totals := make(map[string]int)
	for _, s := range sessions {
		totals[SubjectKey(s.Subject)] += s.DurationMinutes
	}
	return totals
}

// SessionFilter narrows a session listing. From and To are inclusive
// calendar dates; nil means unbounded.
type SessionFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
