package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/middlewares"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserGetter returns a single user.
type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*models.UserDTO, error)
}

// UsersGetter returns every user.
type UsersGetter interface {
	GetUsers(ctx context.Context) ([]models.UserDTO, error)
}

// SignUpper registers users and announces them.
type SignUpper interface {
	CreateUser(ctx context.Context, req *models.SignUpRequest) (*models.LoginResponse, error)
	NotifySignedUp(ctx context.Context, user *models.LoginResponse)
}

// SignInner checks user credentials.
type SignInner interface {
	GetLoginUser(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

// SessionTokenGetter obtains a session token from the auth service.
type SessionTokenGetter interface {
	GetSessionToken(ctx context.Context, userID int64) (string, error)
}

var errEmptySessionToken = errors.New("empty session token")

// NewGetUserHandler returns an HTTP handler that fetches one user.
// @Summary Get user
// @Description Returns a user by id. The id defaults to 1.
// @Tags users
// @Produce json
// @Param id query int false "User id" default(1)
// @Success 200 {object} models.UserDTO
// @Failure 400 {object} models.BaseResponse "Malformed request"
// @Failure 404 {object} models.BaseResponse "Not found"
// @Failure 500 {object} models.BaseResponse "Unexpected exception"
// @Router /user [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := queryInt64(r, "id", 1)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.GetUserByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetUsersHandler returns an HTTP handler that lists users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDTO
// @Failure 500 {object} models.BaseResponse "Unexpected exception"
// @Router /users [get]
func NewGetUsersHandler(svc UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetUsers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewSignUpHandler returns an HTTP handler for user registration.
// @Summary Sign up
// @Description Validates the request, stores the user and returns it with a session token
// @Description issued by the auth-service. The user is not kept if no token could be obtained.
// @Tags users
// @Accept json
// @Produce json
// @Param signUpRequest body models.SignUpRequest true "Sign-up request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.BaseResponse "Request has empty fields / Email is not valid / Passwords don't match"
// @Failure 429 {object} models.BaseResponse "Too many requests"
// @Failure 500 {object} models.BaseResponse "Unexpected exception"
// @Router /user/sign-up [post]
func NewSignUpHandler(svc SignUpper, tokens SessionTokenGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, err := decodeBody[models.SignUpRequest](r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := validateSignUp(req); err != nil {
			logger.FromContext(ctx).Infow("sign-up rejected", "reason", err)
			writeError(w, r, err)
			return
		}

		user, err := svc.CreateUser(ctx, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := attachSessionToken(ctx, tokens, user); err != nil {
			writeError(w, r, err)
			return
		}

		// the event must not reach consumers before the user row is visible
		middlewares.AfterCommit(ctx, func() { svc.NotifySignedUp(ctx, user) })
		writeJSON(w, http.StatusOK, user)
	}
}

// NewSignInHandler returns an HTTP handler for user login.
// @Summary Sign in
// @Description Checks the credentials and returns the user with a fresh session token.
// @Tags users
// @Accept json
// @Produce json
// @Param signInRequest body models.SignInRequest true "Sign-in request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.BaseResponse "Request has empty fields / Email is not valid / Wrong password or email"
// @Failure 429 {object} models.BaseResponse "Too many requests"
// @Failure 500 {object} models.BaseResponse "Unexpected exception"
// @Router /user/sign-in [post]
func NewSignInHandler(svc SignInner, tokens SessionTokenGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, err := decodeBody[models.SignInRequest](r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := validateSignIn(req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.GetLoginUser(ctx, req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if user == nil {
			writeError(w, r, services.ErrWrongCredentials)
			return
		}

		if err := attachSessionToken(ctx, tokens, user); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func attachSessionToken(ctx context.Context, tokens SessionTokenGetter, user *models.LoginResponse) error {
	token, err := tokens.GetSessionToken(ctx, user.ID)
	if err != nil {
		return err
	}
	if token == "" {
		return errEmptySessionToken
	}
	user.SessionToken = token
	return nil
}
