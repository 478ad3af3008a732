package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/jwt"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

//go:generate mockgen -source=tokens.go -destination=mock_tokens.go -package=handlers

// TokenCreator issues session tokens.
type TokenCreator interface {
	CreateToken(ctx context.Context, userID int64) (string, error)
}

// TokenVerifier resolves a session token to its owner.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (int64, error)
}

// TokenRevoker ends a session.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
}

// NewCreateTokenHandler returns an HTTP handler that issues a session token
// and answers with the bare token as text/plain.
func NewCreateTokenHandler(svc TokenCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeBody[models.CreateTokenRequest](r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		token, err := svc.CreateToken(r.Context(), req.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(token))
	}
}

// NewVerifyTokenHandler returns an HTTP handler that reports the owner of
// the bearer token.
func NewVerifyTokenHandler(svc TokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := jwt.TokenFromRequest(r)
		if err != nil {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		userID, err := svc.Verify(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.VerifyTokenResponse{UserID: userID})
	}
}

// NewRevokeTokenHandler returns an HTTP handler that signs the bearer out.
func NewRevokeTokenHandler(svc TokenRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := jwt.TokenFromRequest(r)
		if err != nil {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		if err := svc.Revoke(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
