// Package plan persists daily study plans.
package plan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

// Repo provides plan persistence backed by PostgreSQL.
// Every method is scoped by user_id: a foreign plan is reported as not found.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var planColumns = []string{
	"id", "user_id", "title", "target_minutes", "date", "completed", "created_at", "updated_at",
}

const returningPlan = "RETURNING id, user_id, title, target_minutes, date, completed, created_at, updated_at"

const createSQL = `
INSERT INTO study_plans (id, user_id, title, target_minutes, date, completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
` + returningPlan

const toggleSQL = `
UPDATE study_plans
SET completed = NOT completed, updated_at = now()
WHERE id = $1 AND user_id = $2
` + returningPlan

const deleteSQL = `DELETE FROM study_plans WHERE id = $1 AND user_id = $2`

const markCompletedSQL = `
UPDATE study_plans
SET completed = true, updated_at = now()
WHERE user_id = $1 AND id = ANY($2) AND NOT completed`

type row struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Title         string    `db:"title"`
	TargetMinutes int       `db:"target_minutes"`
	Date          time.Time `db:"date"`
	Completed     bool      `db:"completed"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.StudyPlan {
	return &domain.StudyPlan{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		TargetMinutes: r.TargetMinutes,
		Date:          r.Date,
		Completed:     r.Completed,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Create inserts a plan.
func (r *Repo) Create(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL,
		p.ID, p.UserID, p.Title, p.TargetMinutes, p.Date, p.Completed,
		p.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "plan", p.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns the user's plan.
func (r *Repo) GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.StudyPlan, error) {
	qb := psql.Select(planColumns...).
		From("study_plans").
		Where(sq.Eq{"id": planID, "user_id": userID})

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("get plan: build query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "plan", planID)
	}
	return out.toDomain(), nil
}

// ListByDate returns the user's plans for date in creation order.
func (r *Repo) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudyPlan, error) {
	return r.list(ctx, sq.Eq{"user_id": userID, "date": date})
}

// ListIncompleteByDate returns the user's not yet completed plans for date.
func (r *Repo) ListIncompleteByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*domain.StudyPlan, error) {
	return r.list(ctx, sq.Eq{"user_id": userID, "date": date, "completed": false})
}

// ListIncomplete returns every not yet completed plan of the user.
func (r *Repo) ListIncomplete(ctx context.Context, userID uuid.UUID) ([]*domain.StudyPlan, error) {
	return r.list(ctx, sq.Eq{"user_id": userID, "completed": false})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]*domain.StudyPlan, error) {
	query, args, err := psql.Select(planColumns...).
		From("study_plans").
		Where(where).
		OrderBy("date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list plans: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	out := make([]*domain.StudyPlan, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Update applies a partial patch and returns the updated plan.
func (r *Repo) Update(ctx context.Context, userID, planID uuid.UUID, patch domain.PlanPatch) (*domain.StudyPlan, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, planID)
	}

	ub := psql.Update("study_plans").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": planID, "user_id": userID}).
		Suffix(returningPlan)

	if patch.Title != nil {
		ub = ub.Set("title", *patch.Title)
	}
	if patch.TargetMinutes != nil {
		ub = ub.Set("target_minutes", *patch.TargetMinutes)
	}
	if patch.Completed != nil {
		ub = ub.Set("completed", *patch.Completed)
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("update plan: build query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "plan", planID)
	}
	return out.toDomain(), nil
}

// Toggle flips the completion flag.
func (r *Repo) Toggle(ctx context.Context, userID, planID uuid.UUID) (*domain.StudyPlan, error) {
	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, toggleSQL, planID, userID); err != nil {
		return nil, postgres.MapError(err, "plan", planID)
	}
	return out.toDomain(), nil
}

// Delete removes the user's plan.
func (r *Repo) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, planID, userID)
	if err != nil {
		return postgres.MapError(err, "plan", planID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound)
	}
	return nil
}

// MarkCompleted sets completed on the given plans that are still incomplete
// and returns how many changed.
func (r *Repo) MarkCompleted(ctx context.Context, userID uuid.UUID, planIDs []uuid.UUID) (int, error) {
	if len(planIDs) == 0 {
		return 0, nil
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markCompletedSQL, userID, planIDs)
	if err != nil {
		return 0, fmt.Errorf("mark plans completed: %w", err)
	}
	return int(ct.RowsAffected()), nil
}
