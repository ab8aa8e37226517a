package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatterbox-hq/chatterbox-backend/models"
)

var sessionColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at"}

func TestSessionRepositoryCreateSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	expiresAt := time.Now().Add(time.Hour)
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO sessions (id,user_id,token_hash,expires_at) VALUES ($1,$2,$3,$4)")).
		WithArgs("some session id", "some user id", "some token hash", expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := SessionRepositoryPostgresql{}
	err = repo.CreateSession(context.Background(), mock, models.Session{
		Id:        "some session id",
		UserId:    "some user id",
		TokenHash: "some token hash",
		ExpiresAt: expiresAt,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositorySessionByTokenHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	expiresAt := time.Now().Add(time.Hour)
	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, token_hash, expires_at, created_at FROM sessions WHERE token_hash = $1")).
		WithArgs("some token hash").
		WillReturnRows(pgxmock.NewRows(sessionColumns).
			AddRow("some session id", "some user id", "some token hash", expiresAt, createdAt))

	repo := SessionRepositoryPostgresql{}
	session, err := repo.SessionByTokenHash(context.Background(), mock, "some token hash")

	assert.NoError(t, err)
	if assert.NotNil(t, session) {
		assert.Equal(t, "some session id", session.Id)
		assert.Equal(t, models.UserId("some user id"), session.UserId)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryDeleteExpiredSessions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at < $1")).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	repo := SessionRepositoryPostgresql{}
	deleted, err := repo.DeleteExpiredSessions(context.Background(), mock, now)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
