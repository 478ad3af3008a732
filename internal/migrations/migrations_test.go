package migrations

import (
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "sql/*.sql")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"sql/00001_create_users.sql",
		"sql/00002_create_blogs.sql",
		"sql/00003_create_notifications.sql",
	}, files)

	for _, f := range files {
		data, err := fs.ReadFile(embedMigrations, f)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up")
		assert.Contains(t, string(data), "-- +goose Down")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	err = Run(db, "sideways")
	assert.EqualError(t, err, `unknown migration command "sideways"`)
}
