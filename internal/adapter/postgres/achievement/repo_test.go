package achievement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/studyhabit-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

func TestRepo_Unlock_SendsKeys(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := New(mock)
	userID := uuid.New()
	at := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO achievement_log .* ON CONFLICT \(user_id, achievement_key\) DO NOTHING`).
		WithArgs(userID, []string{"first_steps", "early_bird"}, at).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	n, err := repo.Unlock(context.Background(), userID,
		[]domain.AchievementKey{domain.AchievementFirstSteps, domain.AchievementEarlyBird}, at)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Unlock_NoKeys(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	n, err := New(mock).Unlock(context.Background(), uuid.New(), nil, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Integration_WriteOnce(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()
	userID := uuid.New()

	first := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	n, err := repo.Unlock(ctx, userID, []domain.AchievementKey{domain.AchievementFirstSteps}, first)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.Unlock(ctx, userID,
		[]domain.AchievementKey{domain.AchievementFirstSteps, domain.AchievementNightOwl}, first.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "already unlocked keys are skipped")

	got, err := repo.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.AchievementFirstSteps, got[0].Key)
	assert.True(t, got[0].UnlockedAt.Equal(first), "unlock time is never rewritten")
}
