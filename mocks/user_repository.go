package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor, user models.User) error {
	args := r.Called(exec, user)
	return args.Error(0)
}

func (r *UserRepository) UserById(ctx context.Context, exec repositories.Executor, userId models.UserId) (models.User, error) {
	args := r.Called(exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) UserByUsername(ctx context.Context, exec repositories.Executor, username string) (*models.User, error) {
	args := r.Called(exec, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (r *UserRepository) UpdateUser(ctx context.Context, exec repositories.Executor, updateUser models.UpdateUser) error {
	args := r.Called(exec, updateUser)
	return args.Error(0)
}
