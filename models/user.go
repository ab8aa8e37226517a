package models

import "time"

type UserId string

type User struct {
	UserId       UserId
	Username     string
	About        string
	PasswordHash string
	CreatedAt    time.Time
}

type CreateUser struct {
	Username string
	About    string
	Password string
	Confirm  string
}

type UpdateUser struct {
	UserId UserId
	About  *string
}
