package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/blog-ms/internal/jwt"
	"github.com/sbilibin2017/blog-ms/internal/logger"
)

//go:generate mockgen -source=token.go -destination=mock_token.go -package=services

// TokenGenerator signs and parses session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	Expiration() time.Duration
}

// SessionStore keeps track of live sessions.
// GetUserID returns 0 when the session is unknown.
type SessionStore interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	GetUserID(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) (bool, error)
}

// TokenService issues, verifies and revokes session tokens.
type TokenService struct {
	generator TokenGenerator
	sessions  SessionStore
}

// NewTokenService creates a new TokenService.
func NewTokenService(generator TokenGenerator, sessions SessionStore) *TokenService {
	return &TokenService{generator: generator, sessions: sessions}
}

// CreateToken issues a token for userID and records the session.
func (svc *TokenService) CreateToken(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)
	if userID <= 0 {
		return "", ErrEmptyRequest
	}

	token, err := svc.generator.Generate(ctx, userID)
	if err != nil {
		log.Errorw("failed to generate token", "user_id", userID, "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, token, userID, svc.generator.Expiration()); err != nil {
		log.Errorw("failed to save session", "user_id", userID, "err", err)
		return "", err
	}

	log.Infow("session token issued", "user_id", userID)
	return token, nil
}

// Verify returns the user id of a live session.
func (svc *TokenService) Verify(ctx context.Context, token string) (int64, error) {
	log := logger.FromContext(ctx)

	claims, err := svc.generator.GetClaims(ctx, token)
	if err != nil {
		log.Infow("token rejected", "err", err)
		return 0, ErrUnauthorized
	}

	userID, err := svc.sessions.GetUserID(ctx, token)
	if err != nil {
		log.Errorw("failed to read session", "err", err)
		return 0, err
	}
	if userID == 0 || userID != claims.UserID {
		log.Infow("session not found", "user_id", claims.UserID)
		return 0, ErrUnauthorized
	}

	return userID, nil
}

// Revoke ends the session identified by token.
func (svc *TokenService) Revoke(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	claims, err := svc.generator.GetClaims(ctx, token)
	if err != nil {
		log.Infow("token rejected", "err", err)
		return ErrUnauthorized
	}

	removed, err := svc.sessions.Delete(ctx, token)
	if err != nil {
		log.Errorw("failed to delete session", "user_id", claims.UserID, "err", err)
		return err
	}
	if !removed {
		return ErrUnauthorized
	}

	log.Infow("session revoked", "user_id", claims.UserID)
	return nil
}
