package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDbModel struct {
	Id        string `db:"id"`
	Name      string `db:"name"`
	Ignored   string `db:"-"`
	CreatedAt string `db:"created_at"`
}

func TestColumnList(t *testing.T) {
	assert.Equal(t,
		[]string{"id", "name", "created_at"},
		ColumnList[testDbModel]())
}

func TestColumnListWithPrefix(t *testing.T) {
	assert.Equal(t,
		[]string{"m.id", "m.name", "m.created_at"},
		ColumnList[testDbModel]("m"))
}
