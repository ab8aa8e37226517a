package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

type UserUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  repositories.UserRepository
	credentials     models.Credentials
}

func (usecase *UserUseCase) CurrentUser(ctx context.Context) (models.User, error) {
	return usecase.userRepository.UserById(ctx, usecase.executorFactory.NewExecutor(),
		usecase.credentials.UserId)
}

func (usecase *UserUseCase) ProfileByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := usecase.userRepository.UserByUsername(ctx, usecase.executorFactory.NewExecutor(), username)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, errors.Wrap(models.ErrUnknownUser, username)
	}
	return *user, nil
}

func (usecase *UserUseCase) UpdateAbout(ctx context.Context, about string) (models.User, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.User, error) {
			err := usecase.userRepository.UpdateUser(ctx, tx, models.UpdateUser{
				UserId: usecase.credentials.UserId,
				About:  &about,
			})
			if err != nil {
				return models.User{}, err
			}
			return usecase.userRepository.UserById(ctx, tx, usecase.credentials.UserId)
		})
}
