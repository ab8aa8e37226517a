package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/chatterbox-hq/chatterbox-backend/models"
)

type User struct {
	UserId    string    `json:"user_id"`
	Username  string    `json:"username"`
	About     string    `json:"about"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptUserDto(user models.User) User {
	return User{
		UserId:    string(user.UserId),
		Username:  user.Username,
		About:     user.About,
		CreatedAt: user.CreatedAt,
	}
}

type CreateUserBody struct {
	Username        string `json:"username" binding:"required"`
	About           string `json:"about"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

func AdaptCreateUser(body CreateUserBody) models.CreateUser {
	return models.CreateUser{
		Username: body.Username,
		About:    body.About,
		Password: body.Password,
		Confirm:  body.PasswordConfirm,
	}
}

type UpdateUserBody struct {
	About null.String `json:"about"`
}
