package models

import "time"

// MaxMessageLength bounds the size in bytes of a chat message.
const MaxMessageLength = 10_000

type Message struct {
	Id             string
	UserId         UserId
	AuthorUsername string
	Content        string
	CreatedAt      time.Time
}

type CreateMessage struct {
	Content string
}

type ListMessagesInput struct {
	Limit int
}
