package dbmodels

import (
	"time"

	"github.com/chatterbox-hq/chatterbox-backend/models"
)

// DBMessage carries the author username joined in from the users table.
type DBMessage struct {
	Id             string    `db:"id"`
	UserId         string    `db:"user_id"`
	AuthorUsername string    `db:"author_username"`
	Content        string    `db:"content"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_MESSAGES = "messages"

// SelectMessageColumns qualifies the message columns for the join with users.
var SelectMessageColumns = []string{
	"m.id",
	"m.user_id",
	"u.username AS author_username",
	"m.content",
	"m.created_at",
}

func AdaptMessage(db DBMessage) (models.Message, error) {
	return models.Message{
		Id:             db.Id,
		UserId:         models.UserId(db.UserId),
		AuthorUsername: db.AuthorUsername,
		Content:        db.Content,
		CreatedAt:      db.CreatedAt,
	}, nil
}
