package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chatterbox-hq/chatterbox-backend/mocks"
	"github.com/chatterbox-hq/chatterbox-backend/models"
)

func TestHandleRegister_password_mismatch(t *testing.T) {
	uc := testUsecases(new(mocks.UserRepository), new(mocks.SessionRepository), nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", handleRegister(uc))
	request := httptest.NewRequest(http.MethodPost, "https://chatterbox.example.com/register",
		strings.NewReader(`{"username": "alice", "password": "one", "password_confirm": "two"}`))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

func TestHandleRegister_missing_fields(t *testing.T) {
	uc := testUsecases(new(mocks.UserRepository), new(mocks.SessionRepository), nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", handleRegister(uc))
	request := httptest.NewRequest(http.MethodPost, "https://chatterbox.example.com/register",
		strings.NewReader(`{"username": "alice"}`))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

func TestHandleGetUserProfile(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		userRepository := new(mocks.UserRepository)
		userRepository.On("UserByUsername", mock.Anything, "bob").
			Return(&models.User{UserId: "bob id", Username: "bob", About: "hello"}, nil)

		uc := testUsecases(userRepository, new(mocks.SessionRepository), nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/users/:username", handleGetUserProfile(uc))
		request := httptest.NewRequest(http.MethodGet, "https://chatterbox.example.com/users/bob", nil)
		request = request.WithContext(storeTestCredentials(request.Context()))

		r := httptest.NewRecorder()
		router.ServeHTTP(r, request)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), `"bob"`)
		userRepository.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepository := new(mocks.UserRepository)
		userRepository.On("UserByUsername", mock.Anything, "ghost").Return(nil, nil)

		uc := testUsecases(userRepository, new(mocks.SessionRepository), nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/users/:username", handleGetUserProfile(uc))
		request := httptest.NewRequest(http.MethodGet, "https://chatterbox.example.com/users/ghost", nil)
		request = request.WithContext(storeTestCredentials(request.Context()))

		r := httptest.NewRecorder()
		router.ServeHTTP(r, request)

		assert.Equal(t, http.StatusNotFound, r.Code)
		userRepository.AssertExpectations(t)
	})
}

func TestHandleGetCurrentUser(t *testing.T) {
	userRepository := new(mocks.UserRepository)
	userRepository.On("UserById", mock.Anything, models.UserId("some user id")).
		Return(models.User{UserId: "some user id", Username: "alice"}, nil)

	uc := testUsecases(userRepository, new(mocks.SessionRepository), nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/me", handleGetCurrentUser(uc))
	request := httptest.NewRequest(http.MethodGet, "https://chatterbox.example.com/users/me", nil)
	request = request.WithContext(storeTestCredentials(request.Context()))

	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusOK, r.Code)
	assert.Contains(t, r.Body.String(), `"alice"`)
	userRepository.AssertExpectations(t)
}
