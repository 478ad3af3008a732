package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/jwt"
	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// TokenVerifier resolves a bearer token to the id of its owner.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (int64, error)
}

type userIDKey struct{}

// AuthMiddleware returns a middleware that admits only requests carrying
// a live session token. The owner id is stored in the request context.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			token, err := jwt.TokenFromRequest(r)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					log.Infow("authorization failed", "err", err)
					writeMessage(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				log.Errorw("token verification failed", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Unexpected exception")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, or 0.
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey{}).(int64)
	return id
}
