package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
)

type MessageRepository struct {
	mock.Mock
}

func (r *MessageRepository) CreateMessage(ctx context.Context, exec repositories.Executor, message models.Message) error {
	args := r.Called(exec, message)
	return args.Error(0)
}

func (r *MessageRepository) MessageById(ctx context.Context, exec repositories.Executor, messageId string) (models.Message, error) {
	args := r.Called(exec, messageId)
	return args.Get(0).(models.Message), args.Error(1)
}

func (r *MessageRepository) ListRecentMessages(ctx context.Context, exec repositories.Executor, limit int) ([]models.Message, error) {
	args := r.Called(exec, limit)
	return args.Get(0).([]models.Message), args.Error(1)
}
