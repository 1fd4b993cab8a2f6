package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studyhabit-backend/internal/auth"
	"github.com/heartmarshall/studyhabit-backend/internal/config"
	"github.com/heartmarshall/studyhabit-backend/internal/metrics"
	"github.com/heartmarshall/studyhabit-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyhabit-backend/internal/transport/rest"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	Study       *rest.StudyHandler
	Health      *rest.HealthHandler
	Metrics     *metrics.Metrics
	Tokens      *auth.JWTManager
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	MetricsCfg  config.MetricsConfig
}

// NewRouter builds the HTTP handler: probes and /metrics are public, the
// study API requires a bearer token and write requests are rate limited.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.MetricsCfg.Enabled {
		mux.Handle("GET "+d.MetricsCfg.Path, d.Metrics.Handler())
	}

	protected := middleware.Chain(
		middleware.Auth(d.Tokens, d.Logger),
		d.RateLimiter.LimitWrites(d.RateLimit.WritesPerMinute),
	)
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, protected(h))
	}

	api("POST /api/study/sessions", d.Study.CreateSession)
	api("GET /api/study/sessions", d.Study.ListSessions)
	api("GET /api/study/sessions/today", d.Study.TodaySessions)
	api("GET /api/study/stats", d.Study.Stats)
	api("POST /api/study/stats/recalculate", d.Study.Recalculate)
	api("GET /api/study/weekly-progress", d.Study.WeeklyProgress)
	api("GET /api/study/plans/today", d.Study.TodayPlans)
	api("POST /api/study/plans", d.Study.CreatePlan)
	api("PUT /api/study/plans/{id}", d.Study.UpdatePlan)
	api("PATCH /api/study/plans/{id}/toggle", d.Study.TogglePlan)
	api("DELETE /api/study/plans/{id}", d.Study.DeletePlan)
	api("GET /api/study/achievements", d.Study.Achievements)
	api("GET /api/study/pomodoro/schedule", d.Study.PomodoroSchedule)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORS(d.CORS),
	)(mux)
}
