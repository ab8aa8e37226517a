package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/chatterbox-hq/chatterbox-backend/mocks"
	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	executorFactory   executor_factory.ExecutorFactoryStub
	userRepository    *mocks.UserRepository
	sessionRepository *mocks.SessionRepository

	userId          models.UserId
	user            models.User
	password        string
	repositoryError error
}

func (suite *AuthUseCaseTestSuite) SetupTest() {
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.userRepository = new(mocks.UserRepository)
	suite.sessionRepository = new(mocks.SessionRepository)

	suite.userId = models.UserId("7a5a0333-e544-41d1-a763-847263e69ced")
	suite.password = "s3cr3t pa55word"
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte(suite.password), bcrypt.MinCost)
	suite.user = models.User{
		UserId:       suite.userId,
		Username:     "alice",
		About:        "hi there",
		PasswordHash: string(passwordHash),
	}
	suite.repositoryError = errors.New("some repository error")
}

func (suite *AuthUseCaseTestSuite) makeUsecase() *AuthUseCase {
	return &AuthUseCase{
		executorFactory:   suite.executorFactory,
		userRepository:    suite.userRepository,
		sessionRepository: suite.sessionRepository,
		sessionLifetime:   DefaultSessionLifetime,
	}
}

func (suite *AuthUseCaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.userRepository.AssertExpectations(t)
	suite.sessionRepository.AssertExpectations(t)
}

func (suite *AuthUseCaseTestSuite) Test_Register_nominal() {
	t := suite.T()

	suite.userRepository.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		return user.Username == "alice" &&
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(suite.password)) == nil
	})).Return(nil)
	suite.userRepository.On("UserById", mock.Anything, mock.Anything).Return(suite.user, nil)

	user, err := suite.makeUsecase().Register(context.Background(), models.CreateUser{
		Username: "  alice ",
		About:    "hi there",
		Password: suite.password,
		Confirm:  suite.password,
	})

	assert.NoError(t, err)
	assert.Equal(t, suite.user, user)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Register_missing_fields() {
	t := suite.T()

	_, err := suite.makeUsecase().Register(context.Background(), models.CreateUser{
		Username: "alice",
	})

	assert.ErrorIs(t, err, models.BadParameterError)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Register_password_mismatch() {
	t := suite.T()

	_, err := suite.makeUsecase().Register(context.Background(), models.CreateUser{
		Username: "alice",
		Password: suite.password,
		Confirm:  "something else",
	})

	assert.ErrorIs(t, err, models.ErrPasswordMismatch)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Register_username_taken() {
	t := suite.T()

	suite.userRepository.On("CreateUser", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.makeUsecase().Register(context.Background(), models.CreateUser{
		Username: "alice",
		Password: suite.password,
		Confirm:  suite.password,
	})

	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Login_nominal() {
	t := suite.T()

	suite.userRepository.On("UserByUsername", mock.Anything, "alice").Return(&suite.user, nil)
	suite.sessionRepository.On("CreateSession", mock.Anything, mock.MatchedBy(func(session models.Session) bool {
		return session.UserId == suite.userId && session.TokenHash != ""
	})).Return(nil)

	session, err := suite.makeUsecase().Login(context.Background(), "alice", suite.password)

	assert.NoError(t, err)
	assert.Len(t, session.Token, 2*sessionTokenBytes)
	assert.Equal(t, HashSessionToken(session.Token), session.TokenHash)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionLifetime), session.ExpiresAt, time.Minute)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Login_unknown_user() {
	t := suite.T()

	suite.userRepository.On("UserByUsername", mock.Anything, "bob").Return(nil, nil)

	_, err := suite.makeUsecase().Login(context.Background(), "bob", suite.password)

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Login_wrong_password() {
	t := suite.T()

	suite.userRepository.On("UserByUsername", mock.Anything, "alice").Return(&suite.user, nil)

	_, err := suite.makeUsecase().Login(context.Background(), "alice", "wrong password")

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_Logout_nominal() {
	t := suite.T()

	suite.sessionRepository.On("DeleteSession", mock.Anything, "some session id").Return(nil)

	err := suite.makeUsecase().Logout(context.Background(), models.Credentials{
		UserId:    suite.userId,
		Username:  "alice",
		SessionId: "some session id",
	})

	assert.NoError(t, err)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_ValidateSessionToken_nominal() {
	t := suite.T()

	token := "some token"
	session := models.Session{
		Id:        "some session id",
		UserId:    suite.userId,
		TokenHash: HashSessionToken(token),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	suite.sessionRepository.On("SessionByTokenHash", mock.Anything, HashSessionToken(token)).
		Return(&session, nil)
	suite.userRepository.On("UserById", mock.Anything, suite.userId).Return(suite.user, nil)

	creds, err := suite.makeUsecase().ValidateSessionToken(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, models.Credentials{
		UserId:    suite.userId,
		Username:  "alice",
		SessionId: "some session id",
	}, creds)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_ValidateSessionToken_unknown_token() {
	t := suite.T()

	suite.sessionRepository.On("SessionByTokenHash", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := suite.makeUsecase().ValidateSessionToken(context.Background(), "some token")

	assert.ErrorIs(t, err, models.UnAuthorizedError)

	suite.AssertExpectations()
}

func (suite *AuthUseCaseTestSuite) Test_ValidateSessionToken_expired() {
	t := suite.T()

	token := "some token"
	session := models.Session{
		Id:        "some session id",
		UserId:    suite.userId,
		TokenHash: HashSessionToken(token),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	suite.sessionRepository.On("SessionByTokenHash", mock.Anything, HashSessionToken(token)).
		Return(&session, nil)

	_, err := suite.makeUsecase().ValidateSessionToken(context.Background(), token)

	assert.ErrorIs(t, err, models.ErrSessionExpired)

	suite.AssertExpectations()
}

func TestAuthUseCase(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}
