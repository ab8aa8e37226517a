package dto

import "github.com/chatterbox-hq/chatterbox-backend/models"

type Credentials struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		UserId:   string(creds.UserId),
		Username: creds.Username,
	}
}
