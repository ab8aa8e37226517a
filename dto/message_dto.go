package dto

import (
	"time"

	"github.com/chatterbox-hq/chatterbox-backend/models"
)

type Message struct {
	Id        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptMessageDto(message models.Message) Message {
	return Message{
		Id:        message.Id,
		Author:    message.AuthorUsername,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

type CreateMessageBody struct {
	Content string `json:"content"`
}
