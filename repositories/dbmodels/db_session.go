package dbmodels

import (
	"time"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

type DBSession struct {
	Id        string    `db:"id"`
	UserId    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_SESSIONS = "sessions"

var SelectSessionColumns = utils.ColumnList[DBSession]()

func AdaptSession(db DBSession) (models.Session, error) {
	return models.Session{
		Id:        db.Id,
		UserId:    models.UserId(db.UserId),
		TokenHash: db.TokenHash,
		ExpiresAt: db.ExpiresAt,
		CreatedAt: db.CreatedAt,
	}, nil
}
