// Package study implements study session tracking: the session ledger and
// everything derived from it (stats, streaks, plan progress, weekly chart,
// achievements).
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
	"github.com/heartmarshall/studyhabit-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error)
	List(ctx context.Context, userID uuid.UUID, f domain.SessionFilter) ([]*domain.StudySession, error)
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudySession, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.StudySession, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]*domain.StudySession, error)
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type statsRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (domain.StudyStats, error)
	ApplySession(ctx context.Context, userID uuid.UUID, minutes int, at time.Time) (domain.StudyStats, error)
	SetStreak(ctx context.Context, userID uuid.UUID, streak int) error
	Replace(ctx context.Context, s domain.StudyStats) (domain.StudyStats, error)
}

type streakRepo interface {
	UpsertDay(ctx context.Context, userID uuid.UUID, date time.Time) error
	ListStudiedDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	Rebuild(ctx context.Context, userID uuid.UUID, dates []time.Time) (int, error)
}

type planRepo interface {
	Create(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error)
	GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.StudyPlan, error)
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudyPlan, error)
	ListIncompleteByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudyPlan, error)
	ListIncomplete(ctx context.Context, userID uuid.UUID) ([]*domain.StudyPlan, error)
	Update(ctx context.Context, userID, planID uuid.UUID, patch domain.PlanPatch) (*domain.StudyPlan, error)
	Toggle(ctx context.Context, userID, planID uuid.UUID) (*domain.StudyPlan, error)
	Delete(ctx context.Context, userID, planID uuid.UUID) error
	MarkCompleted(ctx context.Context, userID uuid.UUID, planIDs []uuid.UUID) (int, error)
}

type achievementRepo interface {
	Unlock(ctx context.Context, userID uuid.UUID, keys []domain.AchievementKey, at time.Time) (int, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error)
}

// progressCache holds derived views. Stats entries are scoped to the study
// day they were computed on, since the streak they carry decays at midnight.
type progressCache interface {
	GetStats(ctx context.Context, userID uuid.UUID, day time.Time) (domain.StudyStats, bool, error)
	SetStats(ctx context.Context, s domain.StudyStats, day time.Time) error
	GetWeekly(ctx context.Context, userID uuid.UUID, weekStart time.Time) (domain.WeeklyProgress, bool, error)
	SetWeekly(ctx context.Context, userID uuid.UUID, p domain.WeeklyProgress) error
	Invalidate(ctx context.Context, userID uuid.UUID, weekStarts ...time.Time) error
}

type recalcPublisher interface {
	PublishRecalc(ctx context.Context, userID uuid.UUID, reason string) error
}

type observer interface {
	SessionRecorded(minutes int)
	ReconcileFailed(step string)
	Recalculated()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the calendar and listing parameters of the service.
type Config struct {
	Location             *time.Location
	WeekStart            time.Weekday
	DefaultSessionLimit  int
	MaxSessionLimit      int
	EnforceDurationMatch bool
	DurationTolerance    time.Duration
}

// Deps groups the collaborators of the service. Cache, Publisher and
// Observer are optional.
type Deps struct {
	Sessions     sessionRepo
	Stats        statsRepo
	Streaks      streakRepo
	Plans        planRepo
	Achievements achievementRepo
	Tx           txManager
	Cache        progressCache
	Publisher    recalcPublisher
	Observer     observer
}

// Service implements the study business logic.
type Service struct {
	sessions     sessionRepo
	stats        statsRepo
	streaks      streakRepo
	plans        planRepo
	achievements achievementRepo
	tx           txManager
	cache        progressCache
	publisher    recalcPublisher
	observer     observer
	log          *slog.Logger
	cfg          Config
	now          func() time.Time
}

// NewService creates a new study service.
func NewService(log *slog.Logger, deps Deps, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.DefaultSessionLimit <= 0 {
		cfg.DefaultSessionLimit = 50
	}
	if cfg.MaxSessionLimit < cfg.DefaultSessionLimit {
		cfg.MaxSessionLimit = cfg.DefaultSessionLimit
	}

	s := &Service{
		sessions:     deps.Sessions,
		stats:        deps.Stats,
		streaks:      deps.Streaks,
		plans:        deps.Plans,
		achievements: deps.Achievements,
		tx:           deps.Tx,
		cache:        deps.Cache,
		publisher:    deps.Publisher,
		observer:     deps.Observer,
		log:          log.With("service", "study"),
		cfg:          cfg,
		now:          time.Now,
	}
	if s.cache == nil {
		s.cache = nopCache{}
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s
}

// userID reads the caller identity placed in ctx by the auth middleware.
func userID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

type nopCache struct{}

func (nopCache) GetStats(context.Context, uuid.UUID, time.Time) (domain.StudyStats, bool, error) {
	return domain.StudyStats{}, false, nil
}
func (nopCache) SetStats(context.Context, domain.StudyStats, time.Time) error { return nil }
func (nopCache) GetWeekly(context.Context, uuid.UUID, time.Time) (domain.WeeklyProgress, bool, error) {
	return domain.WeeklyProgress{}, false, nil
}
func (nopCache) SetWeekly(context.Context, uuid.UUID, domain.WeeklyProgress) error { return nil }
func (nopCache) Invalidate(context.Context, uuid.UUID, ...time.Time) error         { return nil }

type nopObserver struct{}

func (nopObserver) SessionRecorded(int)    {}
func (nopObserver) ReconcileFailed(string) {}
func (nopObserver) Recalculated()          {}
