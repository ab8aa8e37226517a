package usecases

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

const sessionTokenBytes = 32

type AuthUseCase struct {
	executorFactory   executor_factory.ExecutorFactory
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
	sessionLifetime   time.Duration
}

func (usecase *AuthUseCase) Register(ctx context.Context, input models.CreateUser) (models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.About = strings.TrimSpace(input.About)

	if input.Username == "" || input.Password == "" || input.Confirm == "" {
		return models.User{}, errors.Wrap(models.BadParameterError, "fill all required fields")
	}
	if input.Password != input.Confirm {
		return models.User{}, models.ErrPasswordMismatch
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "error hashing password")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.User, error) {
			newUserId := models.UserId(uuid.NewString())
			err := usecase.userRepository.CreateUser(ctx, tx, models.User{
				UserId:       newUserId,
				Username:     input.Username,
				About:        input.About,
				PasswordHash: string(passwordHash),
			})
			if repositories.IsUniqueViolationError(err) {
				return models.User{}, models.ErrUsernameTaken
			}
			if err != nil {
				return models.User{}, err
			}
			return usecase.userRepository.UserById(ctx, tx, newUserId)
		})
}

func (usecase *AuthUseCase) Login(ctx context.Context, username, password string) (models.CreatedSession, error) {
	exec := usecase.executorFactory.NewExecutor()

	user, err := usecase.userRepository.UserByUsername(ctx, exec, username)
	if err != nil {
		return models.CreatedSession{}, err
	}
	if user == nil {
		return models.CreatedSession{}, models.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.CreatedSession{}, models.ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return models.CreatedSession{}, err
	}

	session := models.Session{
		Id:        uuid.NewString(),
		UserId:    user.UserId,
		TokenHash: HashSessionToken(token),
		ExpiresAt: time.Now().Add(usecase.sessionLifetime),
	}
	if err := usecase.sessionRepository.CreateSession(ctx, exec, session); err != nil {
		return models.CreatedSession{}, err
	}

	return models.CreatedSession{
		Session: session,
		Token:   token,
	}, nil
}

// Logout deletes the caller's session. Deleting an already deleted session
// is not an error.
func (usecase *AuthUseCase) Logout(ctx context.Context, creds models.Credentials) error {
	if creds.SessionId == "" {
		return nil
	}
	return usecase.sessionRepository.DeleteSession(ctx, usecase.executorFactory.NewExecutor(), creds.SessionId)
}

// ValidateSessionToken resolves a session token into request credentials.
// Expired sessions are rejected before the purge job gets to them.
func (usecase *AuthUseCase) ValidateSessionToken(ctx context.Context, token string) (models.Credentials, error) {
	exec := usecase.executorFactory.NewExecutor()

	session, err := usecase.sessionRepository.SessionByTokenHash(ctx, exec, HashSessionToken(token))
	if err != nil {
		return models.Credentials{}, err
	}
	if session == nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "unknown session token")
	}
	if session.ExpiresAt.Before(time.Now()) {
		return models.Credentials{}, models.ErrSessionExpired
	}

	user, err := usecase.userRepository.UserById(ctx, exec, session.UserId)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{
		UserId:    user.UserId,
		Username:  user.Username,
		SessionId: session.Id,
	}, nil
}

func generateSessionToken() (string, error) {
	tokenBytes := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", errors.Wrap(err, "error generating session token")
	}
	return hex.EncodeToString(tokenBytes), nil
}

func HashSessionToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
