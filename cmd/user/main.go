package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/blog-ms/docs"
	"github.com/sbilibin2017/blog-ms/internal/facades"
	"github.com/sbilibin2017/blog-ms/internal/handlers"
	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/middlewares"
	"github.com/sbilibin2017/blog-ms/internal/repositories"
	"github.com/sbilibin2017/blog-ms/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title blog-ms user API
// @version 1.0.0
// @description User service of the blogging platform: sign-up, sign-in and user lookups
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		authServiceURL, authClientTimeoutSecond, authInternalSecret,
		kafkaBrokers, kafkaTopic,
		rateLimitRequests, rateLimitIntervalSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		authServiceURL, authClientTimeoutSecond, authInternalSecret,
		kafkaBrokers, kafkaTopic,
		rateLimitRequests, rateLimitIntervalSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting user-service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, auth-service, Kafka and rate limit configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	authServiceURL string, authClientTimeoutSecond int, authInternalSecret string,
	kafkaBrokers []string, kafkaTopic string,
	rateLimitRequests, rateLimitIntervalSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Auth-service config
	authServiceURL = getEnv("AUTH_SERVICE_URL", "http://localhost:8081")
	if authClientTimeoutSecond, err = strconv.Atoi(getEnv("AUTH_CLIENT_TIMEOUT_SECOND", "5")); err != nil {
		return
	}
	authInternalSecret = getEnv("AUTH_INTERNAL_SECRET", "")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC_USER_EVENTS", "user-events")

	// Rate limit config
	if rateLimitRequests, err = strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "20")); err != nil {
		return
	}
	if rateLimitIntervalSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_INTERVAL_SECOND", "1")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	authServiceURL string, authClientTimeoutSecond int, authInternalSecret string,
	kafkaBrokers []string, kafkaTopic string,
	rateLimitRequests, rateLimitIntervalSecond int,
) error {
	if err := logger.Initialize(logLevel, "user-service"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", pgHost, "port", pgPort, "db", pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services and facades
	userService := services.NewUserService(userReadRepo, userWriteRepo, kafkaWriter)
	authFacade := facades.NewAuthHTTPFacade(
		&http.Client{},
		authServiceURL,
		time.Duration(authClientTimeoutSecond)*time.Second,
		facades.WithInternalSecret(authInternalSecret),
	)

	// Initialize handlers
	getUserHandler := handlers.NewGetUserHandler(userService)
	getUsersHandler := handlers.NewGetUsersHandler(userService)
	signUpHandler := handlers.NewSignUpHandler(userService, authFacade)
	signInHandler := handlers.NewSignInHandler(userService, authFacade)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/user", getUserHandler)
	r.Get("/users", getUsersHandler)

	var rps float64
	if rateLimitIntervalSecond > 0 {
		rps = float64(rateLimitRequests) / float64(rateLimitIntervalSecond)
	}
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(rps, rateLimitRequests))
		r.With(middlewares.TxMiddleware(db)).Post("/user/sign-up", signUpHandler)
		r.Post("/user/sign-in", signInHandler)
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return serve(ctx, appHost, appPort, r)
}

// serve runs the HTTP server until a shutdown signal arrives.
func serve(ctx context.Context, appHost, appPort string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: handler,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
