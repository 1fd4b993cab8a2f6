package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
	"github.com/heartmarshall/studyhabit-backend/internal/pomodoro"
	"github.com/heartmarshall/studyhabit-backend/internal/service/study"
)

// maxScheduleMinutes bounds the Pomodoro planner to one day.
const maxScheduleMinutes = 24 * 60

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	RecordSession(ctx context.Context, input study.RecordSessionInput) (*domain.StudySession, error)
	ListSessions(ctx context.Context, input study.ListSessionsInput) ([]*domain.StudySession, error)
	ListTodaySessions(ctx context.Context) ([]*domain.StudySession, error)
	GetStats(ctx context.Context) (domain.StudyStats, error)
	Recalculate(ctx context.Context) (domain.Recalculation, error)
	WeeklyProgress(ctx context.Context, weekOffset int) (domain.WeeklyProgress, error)
	ListTodayPlans(ctx context.Context) ([]domain.PlanProgress, error)
	CreatePlan(ctx context.Context, input study.CreatePlanInput) (*domain.StudyPlan, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, input study.UpdatePlanInput) (*domain.StudyPlan, error)
	TogglePlan(ctx context.Context, planID uuid.UUID) (*domain.StudyPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
	ListAchievements(ctx context.Context) ([]domain.AchievementStatus, error)
}

// StudyHandler serves the /api/study endpoints.
type StudyHandler struct {
	svc      studyService
	pomodoro pomodoro.Config
	log      *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, pomodoroCfg pomodoro.Config, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, pomodoro: pomodoroCfg, log: logger.With("handler", "study")}
}

// CreateSession handles POST /api/study/sessions.
func (h *StudyHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.RecordSession(r.Context(), study.RecordSessionInput{
		Subject:         req.Subject,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		Goal:            req.Goal,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// ListSessions handles GET /api/study/sessions?limit=N&from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *StudyHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		input study.ListSessionsInput
		errs  []domain.FieldError
	)

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = limit
	}
	input.From, errs = parseDateParam(q.Get("from"), "from", errs)
	input.To, errs = parseDateParam(q.Get("to"), "to", errs)

	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	sessions, err := h.svc.ListSessions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponses(sessions))
}

// TodaySessions handles GET /api/study/sessions/today.
func (h *StudyHandler) TodaySessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.ListTodaySessions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponses(sessions))
}

// Stats handles GET /api/study/stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Recalculate handles POST /api/study/stats/recalculate.
func (h *StudyHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Recalculate(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recalculateResponse{
		Message:              "stats recalculated",
		Stats:                toStatsResponse(result.Stats),
		StreakDaysCreated:    result.StreakDaysCreated,
		PlansCompleted:       result.PlansCompleted,
		AchievementsUnlocked: result.AchievementsUnlocked,
	})
}

// WeeklyProgress handles GET /api/study/weekly-progress?weekOffset=K.
func (h *StudyHandler) WeeklyProgress(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if raw := r.URL.Query().Get("weekOffset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("weekOffset", "must be an integer"))
			return
		}
		offset = n
	}

	progress, err := h.svc.WeeklyProgress(r.Context(), offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWeeklyResponse(progress))
}

// TodayPlans handles GET /api/study/plans/today.
func (h *StudyHandler) TodayPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListTodayPlans(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanProgressResponses(plans))
}

// CreatePlan handles POST /api/study/plans.
func (h *StudyHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := study.CreatePlanInput{Title: req.Title, TargetMinutes: req.TargetMinutes}
	if req.Date != nil && *req.Date != "" {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		input.Date = &date
	}

	plan, err := h.svc.CreatePlan(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanResponse(plan))
}

// UpdatePlan handles PUT /api/study/plans/{id}.
func (h *StudyHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.planID(w, r)
	if !ok {
		return
	}

	var req updatePlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.svc.UpdatePlan(r.Context(), id, study.UpdatePlanInput{
		Title:         req.Title,
		TargetMinutes: req.TargetMinutes,
		Completed:     req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// TogglePlan handles PATCH /api/study/plans/{id}/toggle.
func (h *StudyHandler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.planID(w, r)
	if !ok {
		return
	}

	plan, err := h.svc.TogglePlan(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// DeletePlan handles DELETE /api/study/plans/{id}.
func (h *StudyHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.planID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePlan(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Achievements handles GET /api/study/achievements.
func (h *StudyHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAchievements(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAchievementResponses(list))
}

// PomodoroSchedule handles GET /api/study/pomodoro/schedule?minutes=N.
func (h *StudyHandler) PomodoroSchedule(w http.ResponseWriter, r *http.Request) {
	minutes, err := strconv.Atoi(r.URL.Query().Get("minutes"))
	if err != nil || minutes < 1 || minutes > maxScheduleMinutes {
		handleError(h.log, w, r, domain.NewValidationError("minutes", "must be between 1 and 1440"))
		return
	}

	total := time.Duration(minutes) * time.Minute
	segments, err := pomodoro.Schedule(total, h.pomodoro)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(total, segments))
}

// planID reads the {id} path value. It writes a 404 for a malformed id,
// since such a plan cannot exist.
func (h *StudyHandler) planID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func parseDateParam(raw, field string, errs []domain.FieldError) (*time.Time, []domain.FieldError) {
	if raw == "" {
		return nil, errs
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, append(errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
	}
	return &date, errs
}
