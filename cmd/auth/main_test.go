package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// clearConfigEnv blanks every variable parseConfig reads; blank means default.
func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
		"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD",
		"REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
		"JWT_SECRET_KEY", "JWT_EXP_SECOND", "AUTH_INTERNAL_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "auth.env"}
	assert.Equal(t, "auth.env", parseFlags())
}

func TestParseConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		jwtSecret, jwtExp, internalSecret,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8081", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Empty(t, redisPassword)
	assert.Equal(t, 10, redisPoolSize)
	assert.Equal(t, 2, redisMinIdleConns)
	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 3600, jwtExp)
	assert.Empty(t, internalSecret)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_PORT", "9191")
	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")
	t.Setenv("AUTH_INTERNAL_SECRET", "peer-secret")

	_, appPort, _,
		redisHost, redisPort, redisDB, _,
		_, _,
		jwtSecret, jwtExp, internalSecret,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9191", appPort)
	assert.Equal(t, "redis.example.com", redisHost)
	assert.Equal(t, 6380, redisPort)
	assert.Equal(t, 2, redisDB)
	assert.Equal(t, "supersecret", jwtSecret)
	assert.Equal(t, 300, jwtExp)
	assert.Equal(t, "peer-secret", internalSecret)
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_IssueVerifyRevoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	port := freePort(t)
	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- run(runCtx, "127.0.0.1", port, "debug",
			redisHost, redisPort.Int(), 0, "", 5, 1,
			"testsecret", 60, "peer-secret",
		)
	}()

	base := "http://127.0.0.1:" + port
	require.Eventually(t, func() bool {
		resp, err := http.Post(base+"/token", "application/json", strings.NewReader(`{"userId":11}`))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusForbidden
	}, 10*time.Second, 100*time.Millisecond)

	var token string
	require.Eventually(t, func() bool {
		req, _ := http.NewRequest(http.MethodPost, base+"/token", strings.NewReader(`{"userId":11}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Secret", "peer-secret")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		token = string(body)
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)
	assert.NotEmpty(t, token)

	call := func(method, path string) *http.Response {
		req, _ := http.NewRequest(method, base+path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := call(http.MethodGet, "/token/verify")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"userId":11}`, string(body))

	resp = call(http.MethodDelete, "/token")
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(http.MethodGet, "/token/verify")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(11 * time.Second):
		t.Fatal("server did not stop")
	}
}
