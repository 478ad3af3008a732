package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

const (
	requestIDHeader      = "X-Request-ID"
	internalSecretHeader = "X-Internal-Secret"
)

// ErrEmptyToken is returned when the auth service answers 2xx without a token.
var ErrEmptyToken = errors.New("auth service returned an empty token")

// AuthHTTPFacade talks to the auth service over HTTP.
type AuthHTTPFacade struct {
	client         *http.Client
	baseURL        string
	timeout        time.Duration
	internalSecret string
}

// Option configures an AuthHTTPFacade.
type Option func(*AuthHTTPFacade)

// WithInternalSecret makes token requests carry the secret the auth
// service expects from its peers.
func WithInternalSecret(secret string) Option {
	return func(f *AuthHTTPFacade) {
		f.internalSecret = secret
	}
}

// NewAuthHTTPFacade creates a new facade. A nil client means http.DefaultClient.
func NewAuthHTTPFacade(client *http.Client, baseURL string, timeout time.Duration, opts ...Option) *AuthHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	f := &AuthHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetSessionToken asks the auth service to issue a session token for userID.
// It blocks until the auth service answers or the timeout expires.
func (f *AuthHTTPFacade) GetSessionToken(ctx context.Context, userID int64) (string, error) {
	body, err := json.Marshal(models.CreateTokenRequest{UserID: userID})
	if err != nil {
		return "", err
	}

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/token", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.internalSecret != "" {
		req.Header.Set(internalSecretHeader, f.internalSecret)
	}
	forwardRequestID(ctx, req)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("token request failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.FromContext(ctx).Errorw("auth service rejected token request",
			"user_id", userID, "status", resp.StatusCode, "body", string(data))
		return "", fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// VerifyToken resolves a bearer token to the id of its owner.
func (f *AuthHTTPFacade) VerifyToken(ctx context.Context, token string) (int64, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/token/verify", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	forwardRequestID(ctx, req)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("verify request failed", "error", err)
		return 0, fmt.Errorf("verify request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return 0, services.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var out models.VerifyTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode verify response: %w", err)
	}
	if out.UserID <= 0 {
		return 0, services.ErrUnauthorized
	}
	return out.UserID, nil
}

func (f *AuthHTTPFacade) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}

func forwardRequestID(ctx context.Context, req *http.Request) {
	if id := logger.RequestID(ctx); id != "" {
		req.Header.Set(requestIDHeader, id)
	}
}
