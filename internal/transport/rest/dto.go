package rest

import (
	"time"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
	"github.com/heartmarshall/studyhabit-backend/internal/pomodoro"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createSessionRequest struct {
	Subject         string    `json:"subject"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes *int      `json:"durationMinutes"`
	Goal            string    `json:"goal"`
}

type createPlanRequest struct {
	Title         string  `json:"title"`
	TargetMinutes int     `json:"targetMinutes"`
	Date          *string `json:"date"`
}

type updatePlanRequest struct {
	Title         *string `json:"title"`
	TargetMinutes *int    `json:"targetMinutes"`
	Completed     *bool   `json:"completed"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type sessionResponse struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	StudyDate       string    `json:"studyDate"`
	DayOfWeek       string    `json:"dayOfWeek"`
	Goal            string    `json:"goal,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type statsResponse struct {
	TotalMinutes          int       `json:"totalMinutes"`
	TotalSessions         int       `json:"totalSessions"`
	CurrentStreak         int       `json:"currentStreak"`
	LastStudyDate         *string   `json:"lastStudyDate"`
	AverageSessionMinutes int       `json:"averageSessionMinutes"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type recalculateResponse struct {
	Message              string        `json:"message"`
	Stats                statsResponse `json:"stats"`
	StreakDaysCreated    int           `json:"streakDaysCreated"`
	PlansCompleted       int           `json:"plansCompleted"`
	AchievementsUnlocked int           `json:"achievementsUnlocked"`
}

type planResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	TargetMinutes  int       `json:"targetMinutes"`
	Date           string    `json:"date"`
	Completed      bool      `json:"completed"`
	ActualDuration *int      `json:"actualDuration,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type dayProgressResponse struct {
	Day   string  `json:"day"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type achievementResponse struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

type scheduleResponse struct {
	TotalMinutes int               `json:"totalMinutes"`
	StudyMinutes int               `json:"studyMinutes"`
	WallMinutes  int               `json:"wallMinutes"`
	Segments     []segmentResponse `json:"segments"`
}

type segmentResponse struct {
	Phase   string `json:"phase"`
	Cycle   int    `json:"cycle"`
	Minutes int    `json:"minutes"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func toSessionResponse(s *domain.StudySession) sessionResponse {
	return sessionResponse{
		ID:              s.ID.String(),
		Subject:         s.Subject,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		StudyDate:       formatDate(s.StudyDate),
		DayOfWeek:       s.DayOfWeek,
		Goal:            s.Goal,
		CreatedAt:       s.CreatedAt,
	}
}

func toSessionResponses(sessions []*domain.StudySession) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	return out
}

func toStatsResponse(s domain.StudyStats) statsResponse {
	resp := statsResponse{
		TotalMinutes:          s.TotalMinutes,
		TotalSessions:         s.TotalSessions,
		CurrentStreak:         s.CurrentStreak,
		AverageSessionMinutes: s.AverageSessionMinutes,
		UpdatedAt:             s.UpdatedAt,
	}
	if s.LastStudyDate != nil {
		d := formatDate(*s.LastStudyDate)
		resp.LastStudyDate = &d
	}
	return resp
}

func toPlanResponse(p *domain.StudyPlan) planResponse {
	return planResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		TargetMinutes: p.TargetMinutes,
		Date:          formatDate(p.Date),
		Completed:     p.Completed,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPlanProgressResponses(plans []domain.PlanProgress) []planResponse {
	out := make([]planResponse, 0, len(plans))
	for _, pp := range plans {
		resp := toPlanResponse(&pp.Plan)
		actual := pp.ActualDuration
		resp.ActualDuration = &actual
		out = append(out, resp)
	}
	return out
}

func toWeeklyResponse(w domain.WeeklyProgress) []dayProgressResponse {
	out := make([]dayProgressResponse, 0, len(w.Days))
	for _, d := range w.Days {
		out = append(out, dayProgressResponse{Day: d.Day, Date: formatDate(d.Date), Hours: d.Hours})
	}
	return out
}

func toAchievementResponses(list []domain.AchievementStatus) []achievementResponse {
	out := make([]achievementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, achievementResponse{
			Key:         string(a.Key),
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    a.Unlocked,
			UnlockedAt:  a.UnlockedAt,
		})
	}
	return out
}

func toScheduleResponse(total time.Duration, segments []pomodoro.Segment) scheduleResponse {
	resp := scheduleResponse{
		TotalMinutes: int(total / time.Minute),
		StudyMinutes: int(pomodoro.StudyTime(segments) / time.Minute),
		WallMinutes:  int(pomodoro.WallTime(segments) / time.Minute),
		Segments:     make([]segmentResponse, 0, len(segments)),
	}
	for _, s := range segments {
		resp.Segments = append(resp.Segments, segmentResponse{
			Phase:   string(s.Phase),
			Cycle:   s.Cycle,
			Minutes: int(s.Duration / time.Minute),
		})
	}
	return resp
}
