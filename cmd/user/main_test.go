package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "version v1.0.0")
	assert.Contains(t, output, "commit abcd1234")
	assert.Contains(t, output, "build 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		authServiceURL, authClientTimeoutSecond, authInternalSecret,
		kafkaBrokers, kafkaTopic,
		rateLimitRequests, rateLimitIntervalSecond,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)

	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "database", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)

	assert.Equal(t, "http://localhost:8081", authServiceURL)
	assert.Equal(t, 5, authClientTimeoutSecond)
	assert.Empty(t, authInternalSecret)

	assert.Empty(t, kafkaBrokers)
	assert.Equal(t, "user-events", kafkaTopic)

	assert.Equal(t, 20, rateLimitRequests)
	assert.Equal(t, 1, rateLimitIntervalSecond)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()

	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9090\n" +
		"AUTH_SERVICE_URL=http://auth:8081\n" +
		"AUTH_CLIENT_TIMEOUT_SECOND=2\n" +
		"AUTH_INTERNAL_SECRET=peer-secret\n" +
		"KAFKA_BROKERS=k1:9092,k2:9092\n" +
		"RATE_LIMIT_REQUESTS=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, appPort, _,
		_, _, _, _, _,
		_, _,
		authServiceURL, authClientTimeoutSecond, authInternalSecret,
		kafkaBrokers, _,
		rateLimitRequests, _,
		err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "http://auth:8081", authServiceURL)
	assert.Equal(t, 2, authClientTimeoutSecond)
	assert.Equal(t, "peer-secret", authInternalSecret)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, kafkaBrokers)
	assert.Equal(t, 5, rateLimitRequests)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("AUTH_CLIENT_TIMEOUT_SECOND", "soon")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _,
		_, _,
		_, _,
		err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}
