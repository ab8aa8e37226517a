package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
)

type SessionRepository struct {
	mock.Mock
}

func (r *SessionRepository) CreateSession(ctx context.Context, exec repositories.Executor, session models.Session) error {
	args := r.Called(exec, session)
	return args.Error(0)
}

func (r *SessionRepository) SessionByTokenHash(ctx context.Context, exec repositories.Executor, tokenHash string) (*models.Session, error) {
	args := r.Called(exec, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (r *SessionRepository) DeleteSession(ctx context.Context, exec repositories.Executor, sessionId string) error {
	args := r.Called(exec, sessionId)
	return args.Error(0)
}

func (r *SessionRepository) DeleteExpiredSessions(ctx context.Context, exec repositories.Executor, now time.Time) (int64, error) {
	args := r.Called(exec, now)
	return args.Get(0).(int64), args.Error(1)
}
