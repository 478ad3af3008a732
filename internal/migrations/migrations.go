// Package migrations holds the database schema shared by every service
// and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/blog-ms/internal/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const (
	migrationsDir = "sql"
	tableName     = "schema_migrations"
)

// zapGooseLogger forwards goose output to the global logger.
// Fatalf does not exit; errors are returned to the caller instead.
type zapGooseLogger struct{}

func (zapGooseLogger) Printf(format string, v ...interface{}) {
	logger.Log.Infof(format, v...)
}

func (zapGooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Log.Errorf(format, v...)
}

func setup() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(zapGooseLogger{})
	goose.SetTableName(tableName)
	return goose.SetDialect("postgres")
}

// Run executes a goose command (up, down, reset, status, version)
// against db.
func Run(db *sql.DB, command string) error {
	if err := setup(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	switch command {
	case "up":
		return goose.Up(db, migrationsDir)
	case "down":
		return goose.Down(db, migrationsDir)
	case "reset":
		return goose.Reset(db, migrationsDir)
	case "status":
		return goose.Status(db, migrationsDir)
	case "version":
		return goose.Version(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}

// Up applies all pending migrations.
func Up(db *sql.DB) error {
	return Run(db, "up")
}
