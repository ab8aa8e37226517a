package usecases

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

const (
	defaultMessageListLimit = 20
	maxMessageListLimit     = 100
)

type ChatUseCase struct {
	executorFactory   executor_factory.ExecutorFactory
	messageRepository repositories.MessageRepository
	credentials       models.Credentials
}

func (usecase *ChatUseCase) PostMessage(ctx context.Context, input models.CreateMessage) (models.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return models.Message{}, models.ErrEmptyMessage
	}
	if len(content) > models.MaxMessageLength {
		return models.Message{}, models.ErrMessageTooLong
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Message, error) {
			newMessageId := uuid.NewString()
			err := usecase.messageRepository.CreateMessage(ctx, tx, models.Message{
				Id:      newMessageId,
				UserId:  usecase.credentials.UserId,
				Content: content,
			})
			if err != nil {
				return models.Message{}, err
			}
			return usecase.messageRepository.MessageById(ctx, tx, newMessageId)
		})
}

// ListMessages returns the latest messages in ascending chronological order.
func (usecase *ChatUseCase) ListMessages(ctx context.Context, input models.ListMessagesInput) ([]models.Message, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultMessageListLimit
	}
	if limit > maxMessageListLimit {
		limit = maxMessageListLimit
	}

	messages, err := usecase.messageRepository.ListRecentMessages(
		ctx, usecase.executorFactory.NewExecutor(), limit)
	if err != nil {
		return nil, err
	}

	slices.Reverse(messages)
	return messages, nil
}
