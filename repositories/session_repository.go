package repositories

import (
	"context"
	"time"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories/dbmodels"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, exec Executor, session models.Session) error
	SessionByTokenHash(ctx context.Context, exec Executor, tokenHash string) (*models.Session, error)
	DeleteSession(ctx context.Context, exec Executor, sessionId string) error
	DeleteExpiredSessions(ctx context.Context, exec Executor, now time.Time) (int64, error)
}

type SessionRepositoryPostgresql struct{}

func (repo *SessionRepositoryPostgresql) CreateSession(ctx context.Context, exec Executor, session models.Session) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_SESSIONS).
			Columns(
				"id",
				"user_id",
				"token_hash",
				"expires_at",
			).
			Values(
				session.Id,
				string(session.UserId),
				session.TokenHash,
				session.ExpiresAt,
			),
	)
}

func (repo *SessionRepositoryPostgresql) SessionByTokenHash(ctx context.Context, exec Executor, tokenHash string) (*models.Session, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSessionColumns...).
			From(dbmodels.TABLE_SESSIONS).
			Where("token_hash = ?", tokenHash),
		dbmodels.AdaptSession,
	)
}

func (repo *SessionRepositoryPostgresql) DeleteSession(ctx context.Context, exec Executor, sessionId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_SESSIONS).
			Where("id = ?", sessionId),
	)
}

func (repo *SessionRepositoryPostgresql) DeleteExpiredSessions(ctx context.Context, exec Executor, now time.Time) (int64, error) {
	return ExecBuilderReturnAffected(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_SESSIONS).
			Where("expires_at < ?", now),
	)
}
