package repositories

import (
	"context"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories/dbmodels"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec Executor, user models.User) error
	UserById(ctx context.Context, exec Executor, userId models.UserId) (models.User, error)
	UserByUsername(ctx context.Context, exec Executor, username string) (*models.User, error)
	UpdateUser(ctx context.Context, exec Executor, updateUser models.UpdateUser) error
}

type UserRepositoryPostgresql struct{}

func (repo *UserRepositoryPostgresql) CreateUser(ctx context.Context, exec Executor, user models.User) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"username",
				"about",
				"password_hash",
			).
			Values(
				string(user.UserId),
				user.Username,
				nilIfEmpty(user.About),
				user.PasswordHash,
			),
	)
}

func (repo *UserRepositoryPostgresql) UserById(ctx context.Context, exec Executor, userId models.UserId) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where("id = ?", string(userId)),
		dbmodels.AdaptUser,
	)
}

func (repo *UserRepositoryPostgresql) UserByUsername(ctx context.Context, exec Executor, username string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where("username = ?", username),
		dbmodels.AdaptUser,
	)
}

func (repo *UserRepositoryPostgresql) UpdateUser(ctx context.Context, exec Executor, updateUser models.UpdateUser) error {
	updateRequest := NewQueryBuilder().Update(dbmodels.TABLE_USERS)

	if updateUser.About != nil {
		updateRequest = updateRequest.Set("about", nilIfEmpty(*updateUser.About))
	}

	updateRequest = updateRequest.Where("id = ?", string(updateUser.UserId))

	return ExecBuilder(ctx, exec, updateRequest)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
