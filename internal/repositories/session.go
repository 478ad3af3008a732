package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/blog-ms/internal/logger"
)

// SessionRepository keeps issued session tokens in Redis
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Save records the session; it disappears after ttl
func (r *SessionRepository) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	err := r.client.Set(ctx, sessionKey(token), strconv.FormatInt(userID, 10), ttl).Err()

	logger.FromContext(ctx).Infow(
		"op", "set session",
		"user_id", userID,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// GetUserID returns the user owning the session, or 0 if there is none
func (r *SessionRepository) GetUserID(ctx context.Context, token string) (int64, error) {
	val, err := r.client.Get(ctx, sessionKey(token)).Result()

	logger.FromContext(ctx).Infow(
		"op", "get session",
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(val, 10, 64)
}

// Delete removes the session and reports whether it existed
func (r *SessionRepository) Delete(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Del(ctx, sessionKey(token)).Result()

	logger.FromContext(ctx).Infow(
		"op", "delete session",
		"result", n,
		"error", err,
	)

	return n > 0, err
}
