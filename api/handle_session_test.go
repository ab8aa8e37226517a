package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/chatterbox-hq/chatterbox-backend/mocks"
	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
)

func testUsecases(
	userRepository repositories.UserRepository,
	sessionRepository repositories.SessionRepository,
	messageRepository repositories.MessageRepository,
) usecases.Usecases {
	return usecases.NewUsecases(repositories.Repositories{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		MessageRepository: messageRepository,
	})
}

func TestHandleLogin(t *testing.T) {
	password := "s3cr3t pa55word"
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := models.User{
		UserId:       "some user id",
		Username:     "alice",
		PasswordHash: string(passwordHash),
	}

	t.Run("nominal", func(t *testing.T) {
		userRepository := new(mocks.UserRepository)
		sessionRepository := new(mocks.SessionRepository)
		userRepository.On("UserByUsername", mock.Anything, "alice").Return(&user, nil)
		sessionRepository.On("CreateSession", mock.Anything, mock.Anything).Return(nil)

		uc := testUsecases(userRepository, sessionRepository, nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/login", handleLogin(Configuration{}, uc))
		request := httptest.NewRequest(http.MethodPost, "https://chatterbox.example.com/login",
			strings.NewReader(`{"username": "alice", "password": "s3cr3t pa55word"}`))

		r := httptest.NewRecorder()
		router.ServeHTTP(r, request)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), `"token"`)
		cookies := r.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, SessionCookieName, cookies[0].Name)
			assert.NotEmpty(t, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		}
		userRepository.AssertExpectations(t)
		sessionRepository.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepository := new(mocks.UserRepository)
		sessionRepository := new(mocks.SessionRepository)
		userRepository.On("UserByUsername", mock.Anything, "alice").Return(&user, nil)

		uc := testUsecases(userRepository, sessionRepository, nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/login", handleLogin(Configuration{}, uc))
		request := httptest.NewRequest(http.MethodPost, "https://chatterbox.example.com/login",
			strings.NewReader(`{"username": "alice", "password": "nope"}`))

		r := httptest.NewRecorder()
		router.ServeHTTP(r, request)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.Empty(t, r.Result().Cookies())
		userRepository.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := testUsecases(new(mocks.UserRepository), new(mocks.SessionRepository), nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.POST("/login", handleLogin(Configuration{}, uc))
		request := httptest.NewRequest(http.MethodPost, "https://chatterbox.example.com/login",
			strings.NewReader(`{"username": "alice"}`))

		r := httptest.NewRecorder()
		router.ServeHTTP(r, request)

		assert.Equal(t, http.StatusBadRequest, r.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	sessionRepository := new(mocks.SessionRepository)
	sessionRepository.On("DeleteSession", mock.Anything, "some session id").Return(nil)

	uc := testUsecases(new(mocks.UserRepository), sessionRepository, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/logout", handleLogout(Configuration{}, uc))
	request := httptest.NewRequest(http.MethodPost, "https://chatterbox.example.com/logout", nil)
	request = request.WithContext(storeTestCredentials(request.Context()))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusNoContent, r.Code)
	cookies := r.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, SessionCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
	}
	sessionRepository.AssertExpectations(t)
}

func TestHandleGetCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/credentials", handleGetCredentials())
	request := httptest.NewRequest(http.MethodGet, "https://chatterbox.example.com/credentials", nil)
	request = request.WithContext(storeTestCredentials(request.Context()))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusOK, r.Code)
	assert.JSONEq(t,
		`{"credentials": {"user_id": "some user id", "username": "alice"}}`,
		r.Body.String())
}
