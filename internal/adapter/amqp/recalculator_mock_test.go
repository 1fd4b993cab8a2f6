package amqp

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/domain"
)

var _ recalculator = &recalculatorMock{}

type recalculatorMock struct {
	RecalculateUserFunc func(ctx context.Context, userID uuid.UUID) (domain.Recalculation, error)

	calls struct {
		RecalculateUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockRecalculateUser sync.RWMutex
}

func (mock *recalculatorMock) RecalculateUser(ctx context.Context, userID uuid.UUID) (domain.Recalculation, error) {
	if mock.RecalculateUserFunc == nil {
		panic("recalculatorMock.RecalculateUserFunc: method is nil but recalculator.RecalculateUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockRecalculateUser.Lock()
	mock.calls.RecalculateUser = append(mock.calls.RecalculateUser, callInfo)
	mock.lockRecalculateUser.Unlock()
	return mock.RecalculateUserFunc(ctx, userID)
}

func (mock *recalculatorMock) RecalculateUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockRecalculateUser.RLock()
	calls := mock.calls.RecalculateUser
	mock.lockRecalculateUser.RUnlock()
	return calls
}
