package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/chatterbox-hq/chatterbox-backend/mocks"
	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

type UserUseCaseTestSuite struct {
	suite.Suite
	executorFactory executor_factory.ExecutorFactoryStub
	userRepository  *mocks.UserRepository

	credentials models.Credentials
	user        models.User
}

func (suite *UserUseCaseTestSuite) SetupTest() {
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.userRepository = new(mocks.UserRepository)

	suite.credentials = models.Credentials{
		UserId:    models.UserId("7a5a0333-e544-41d1-a763-847263e69ced"),
		Username:  "alice",
		SessionId: "some session id",
	}
	suite.user = models.User{
		UserId:   suite.credentials.UserId,
		Username: "alice",
		About:    "hi there",
	}
}

func (suite *UserUseCaseTestSuite) makeUsecase() *UserUseCase {
	return &UserUseCase{
		executorFactory: suite.executorFactory,
		userRepository:  suite.userRepository,
		credentials:     suite.credentials,
	}
}

func (suite *UserUseCaseTestSuite) Test_CurrentUser_nominal() {
	t := suite.T()

	suite.userRepository.On("UserById", mock.Anything, suite.credentials.UserId).
		Return(suite.user, nil)

	user, err := suite.makeUsecase().CurrentUser(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, suite.user, user)

	suite.userRepository.AssertExpectations(t)
}

func (suite *UserUseCaseTestSuite) Test_ProfileByUsername_nominal() {
	t := suite.T()

	suite.userRepository.On("UserByUsername", mock.Anything, "alice").
		Return(&suite.user, nil)

	user, err := suite.makeUsecase().ProfileByUsername(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, suite.user, user)

	suite.userRepository.AssertExpectations(t)
}

func (suite *UserUseCaseTestSuite) Test_ProfileByUsername_unknown() {
	t := suite.T()

	suite.userRepository.On("UserByUsername", mock.Anything, "bob").Return(nil, nil)

	_, err := suite.makeUsecase().ProfileByUsername(context.Background(), "bob")

	assert.ErrorIs(t, err, models.ErrUnknownUser)
	assert.ErrorIs(t, err, models.NotFoundError)

	suite.userRepository.AssertExpectations(t)
}

func (suite *UserUseCaseTestSuite) Test_UpdateAbout_nominal() {
	t := suite.T()

	about := "new about"
	updated := suite.user
	updated.About = about

	suite.userRepository.On("UpdateUser", mock.Anything, mock.MatchedBy(func(update models.UpdateUser) bool {
		return update.UserId == suite.credentials.UserId && update.About != nil && *update.About == about
	})).Return(nil)
	suite.userRepository.On("UserById", mock.Anything, suite.credentials.UserId).
		Return(updated, nil)

	user, err := suite.makeUsecase().UpdateAbout(context.Background(), about)

	assert.NoError(t, err)
	assert.Equal(t, updated, user)

	suite.userRepository.AssertExpectations(t)
}

func TestUserUseCase(t *testing.T) {
	suite.Run(t, new(UserUseCaseTestSuite))
}
