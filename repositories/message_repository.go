package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories/dbmodels"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, exec Executor, message models.Message) error
	MessageById(ctx context.Context, exec Executor, messageId string) (models.Message, error)
	// ListRecentMessages returns the latest messages, most recent first.
	ListRecentMessages(ctx context.Context, exec Executor, limit int) ([]models.Message, error)
}

type MessageRepositoryPostgresql struct{}

func (repo *MessageRepositoryPostgresql) CreateMessage(ctx context.Context, exec Executor, message models.Message) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_MESSAGES).
			Columns(
				"id",
				"user_id",
				"content",
			).
			Values(
				message.Id,
				string(message.UserId),
				message.Content,
			),
	)
}

func (repo *MessageRepositoryPostgresql) MessageById(ctx context.Context, exec Executor, messageId string) (models.Message, error) {
	return SqlToModel(
		ctx,
		exec,
		selectMessagesWithAuthor().Where("m.id = ?", messageId),
		dbmodels.AdaptMessage,
	)
}

func (repo *MessageRepositoryPostgresql) ListRecentMessages(ctx context.Context, exec Executor, limit int) ([]models.Message, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectMessagesWithAuthor().
			OrderBy("m.created_at DESC, m.id DESC").
			Limit(uint64(limit)),
		dbmodels.AdaptMessage,
	)
}

func selectMessagesWithAuthor() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectMessageColumns...).
		From(fmt.Sprintf("%s AS m", dbmodels.TABLE_MESSAGES)).
		Join(fmt.Sprintf("%s AS u ON u.id = m.user_id", dbmodels.TABLE_USERS))
}
