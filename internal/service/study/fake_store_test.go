package study

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// fakeStore is an in-memory stand-in for the PostgreSQL repositories.
// Setting fail[<op>] makes that operation return the error.
type fakeStore struct {
	mu           sync.Mutex
	sessions     []*domain.StudySession
	stats        map[uuid.UUID]domain.StudyStats
	streak       map[uuid.UUID]map[string]time.Time
	plans        map[uuid.UUID]*domain.StudyPlan
	achievements map[uuid.UUID]map[domain.AchievementKey]time.Time
	fail         map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stats:        make(map[uuid.UUID]domain.StudyStats),
		streak:       make(map[uuid.UUID]map[string]time.Time),
		plans:        make(map[uuid.UUID]*domain.StudyPlan),
		achievements: make(map[uuid.UUID]map[domain.AchievementKey]time.Time),
		fail:         make(map[string]error),
	}
}

func (f *fakeStore) err(op string) error { return f.fail[op] }

type fakeSessions struct{ *fakeStore }
type fakeStats struct{ *fakeStore }
type fakeStreaks struct{ *fakeStore }
type fakePlans struct{ *fakeStore }
type fakeAchievements struct{ *fakeStore }

type fakeTx struct{}

func (fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func (f *fakeStore) deps() Deps {
	return Deps{
		Sessions:     fakeSessions{f},
		Stats:        fakeStats{f},
		Streaks:      fakeStreaks{f},
		Plans:        fakePlans{f},
		Achievements: fakeAchievements{f},
		Tx:           fakeTx{},
	}
}

// --- sessions ---

func (f fakeSessions) Create(_ context.Context, s *domain.StudySession) (*domain.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("sessions.Create"); err != nil {
		return nil, err
	}
	cp := *s
	f.sessions = append(f.sessions, &cp)
	out := cp
	return &out, nil
}

func (f fakeSessions) filter(userID uuid.UUID, keep func(*domain.StudySession) bool) []*domain.StudySession {
	var out []*domain.StudySession
	for _, s := range f.sessions {
		if s.UserID == userID && keep(s) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out
}

func (f fakeSessions) List(_ context.Context, userID uuid.UUID, flt domain.SessionFilter) ([]*domain.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("sessions.List"); err != nil {
		return nil, err
	}
	out := f.filter(userID, func(s *domain.StudySession) bool {
		if flt.From != nil && s.StudyDate.Before(*flt.From) {
			return false
		}
		if flt.To != nil && s.StudyDate.After(*flt.To) {
			return false
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	if flt.Limit > 0 && len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f fakeSessions) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudySession, error) {
	return f.ListRange(ctx, userID, date, date)
}

func (f fakeSessions) ListRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("sessions.ListRange"); err != nil {
		return nil, err
	}
	out := f.filter(userID, func(s *domain.StudySession) bool {
		return !s.StudyDate.Before(from) && !s.StudyDate.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f fakeSessions) ListAll(_ context.Context, userID uuid.UUID) ([]*domain.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("sessions.ListAll"); err != nil {
		return nil, err
	}
	out := f.filter(userID, func(*domain.StudySession) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f fakeSessions) ListUserIDs(context.Context) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, s := range f.sessions {
		if !seen[s.UserID] {
			seen[s.UserID] = true
			out = append(out, s.UserID)
		}
	}
	for id := range f.stats {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

// --- stats ---

func (f fakeStats) GetOrCreate(_ context.Context, userID uuid.UUID) (domain.StudyStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("stats.GetOrCreate"); err != nil {
		return domain.StudyStats{}, err
	}
	st, ok := f.stats[userID]
	if !ok {
		st = domain.ZeroStats(userID)
		f.stats[userID] = st
	}
	return st, nil
}

func (f fakeStats) ApplySession(_ context.Context, userID uuid.UUID, minutes int, at time.Time) (domain.StudyStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("stats.ApplySession"); err != nil {
		return domain.StudyStats{}, err
	}
	st, ok := f.stats[userID]
	if !ok {
		st = domain.ZeroStats(userID)
	}
	st.TotalMinutes += minutes
	st.TotalSessions++
	st.AverageSessionMinutes = domain.AverageMinutes(st.TotalMinutes, st.TotalSessions)
	st.LastStudyDate = &at
	f.stats[userID] = st
	return st, nil
}

func (f fakeStats) SetStreak(_ context.Context, userID uuid.UUID, streak int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("stats.SetStreak"); err != nil {
		return err
	}
	st, ok := f.stats[userID]
	if !ok {
		st = domain.ZeroStats(userID)
	}
	st.CurrentStreak = streak
	f.stats[userID] = st
	return nil
}

func (f fakeStats) Replace(_ context.Context, s domain.StudyStats) (domain.StudyStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("stats.Replace"); err != nil {
		return domain.StudyStats{}, err
	}
	f.stats[s.UserID] = s
	return s, nil
}

// --- streak history ---

func (f fakeStreaks) UpsertDay(_ context.Context, userID uuid.UUID, date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("streaks.UpsertDay"); err != nil {
		return err
	}
	if f.streak[userID] == nil {
		f.streak[userID] = make(map[string]time.Time)
	}
	f.streak[userID][dateKey(date)] = date
	return nil
}

func (f fakeStreaks) ListStudiedDays(_ context.Context, userID uuid.UUID) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("streaks.ListStudiedDays"); err != nil {
		return nil, err
	}
	var out []time.Time
	for _, d := range f.streak[userID] {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out, nil
}

func (f fakeStreaks) Rebuild(_ context.Context, userID uuid.UUID, dates []time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("streaks.Rebuild"); err != nil {
		return 0, err
	}
	f.streak[userID] = make(map[string]time.Time, len(dates))
	for _, d := range dates {
		f.streak[userID][dateKey(d)] = d
	}
	return len(dates), nil
}

// --- plans ---

func (f fakePlans) Create(_ context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("plans.Create"); err != nil {
		return nil, err
	}
	cp := *p
	f.plans[p.ID] = &cp
	out := cp
	return &out, nil
}

func (f fakePlans) owned(userID, planID uuid.UUID) (*domain.StudyPlan, error) {
	p, ok := f.plans[planID]
	if !ok || p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f fakePlans) GetByID(_ context.Context, userID, planID uuid.UUID) (*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(userID, planID)
	if err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

func (f fakePlans) list(userID uuid.UUID, keep func(*domain.StudyPlan) bool) []*domain.StudyPlan {
	var out []*domain.StudyPlan
	for _, p := range f.plans {
		if p.UserID == userID && keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (f fakePlans) ListByDate(_ context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("plans.ListByDate"); err != nil {
		return nil, err
	}
	return f.list(userID, func(p *domain.StudyPlan) bool { return p.Date.Equal(date) }), nil
}

func (f fakePlans) ListIncompleteByDate(_ context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("plans.ListIncompleteByDate"); err != nil {
		return nil, err
	}
	return f.list(userID, func(p *domain.StudyPlan) bool { return !p.Completed && p.Date.Equal(date) }), nil
}

func (f fakePlans) ListIncomplete(_ context.Context, userID uuid.UUID) ([]*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("plans.ListIncomplete"); err != nil {
		return nil, err
	}
	return f.list(userID, func(p *domain.StudyPlan) bool { return !p.Completed }), nil
}

func (f fakePlans) Update(_ context.Context, userID, planID uuid.UUID, patch domain.PlanPatch) (*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(userID, planID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.TargetMinutes != nil {
		p.TargetMinutes = *patch.TargetMinutes
	}
	if patch.Completed != nil {
		p.Completed = *patch.Completed
	}
	out := *p
	return &out, nil
}

func (f fakePlans) Toggle(_ context.Context, userID, planID uuid.UUID) (*domain.StudyPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.owned(userID, planID)
	if err != nil {
		return nil, err
	}
	p.Completed = !p.Completed
	out := *p
	return &out, nil
}

func (f fakePlans) Delete(_ context.Context, userID, planID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.owned(userID, planID); err != nil {
		return err
	}
	delete(f.plans, planID)
	return nil
}

func (f fakePlans) MarkCompleted(_ context.Context, userID uuid.UUID, planIDs []uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("plans.MarkCompleted"); err != nil {
		return 0, err
	}
	n := 0
	for _, id := range planIDs {
		if p, err := f.owned(userID, id); err == nil && !p.Completed {
			p.Completed = true
			n++
		}
	}
	return n, nil
}

// --- achievements ---

func (f fakeAchievements) Unlock(_ context.Context, userID uuid.UUID, keys []domain.AchievementKey, at time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("achievements.Unlock"); err != nil {
		return 0, err
	}
	if f.achievements[userID] == nil {
		f.achievements[userID] = make(map[domain.AchievementKey]time.Time)
	}
	n := 0
	for _, k := range keys {
		if _, ok := f.achievements[userID][k]; !ok {
			f.achievements[userID][k] = at
			n++
		}
	}
	return n, nil
}

func (f fakeAchievements) List(_ context.Context, userID uuid.UUID) ([]domain.UnlockedAchievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.UnlockedAchievement
	for k, at := range f.achievements[userID] {
		out = append(out, domain.UnlockedAchievement{Key: k, UnlockedAt: at})
	}
	return out, nil
}
