package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

type DBUser struct {
	Id           string      `db:"id"`
	Username     string      `db:"username"`
	About        pgtype.Text `db:"about"`
	PasswordHash string      `db:"password_hash"`
	CreatedAt    time.Time   `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	var about string
	if db.About.Valid {
		about = db.About.String
	}
	return models.User{
		UserId:       models.UserId(db.Id),
		Username:     db.Username,
		About:        about,
		PasswordHash: db.PasswordHash,
		CreatedAt:    db.CreatedAt,
	}, nil
}
