package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	fmt.Printf("Starting migrate version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
	configPath, command := parseFlags()

	logLevel, pgHost, pgPort, pgUser, pgPassword, pgDB, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), command, logLevel, pgHost, pgPort, pgUser, pgPassword, pgDB); err != nil {
		log.Fatalf("migration %q failed: %v", command, err)
	}
}

// parseFlags returns the config file path and the goose command
// (up, down, reset, status, version). The command defaults to up.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}
	return *c, command
}

// parseConfig loads environment variables from a file and returns the
// database configuration.
func parseConfig(path string) (
	logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	logLevel = getEnv("APP_LOG_LEVEL", "info")
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	return
}

func run(ctx context.Context, command, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
) error {
	if err := logger.Initialize(logLevel, "migrate"); err != nil {
		return err
	}
	defer logger.Log.Sync()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	logger.Log.Infow("running migrations", "command", command, "host", pgHost, "db", pgDB)
	return migrations.Run(db.DB, command)
}
