package dto

import (
	"time"

	"github.com/chatterbox-hq/chatterbox-backend/models"
)

type LoginBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func AdaptSessionDto(session models.CreatedSession) Session {
	return Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}
