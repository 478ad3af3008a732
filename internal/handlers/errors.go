package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

const messageUnexpected = "Unexpected exception"

var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrNotFound, http.StatusNotFound, "Not found"},
	{services.ErrWrongCredentials, http.StatusBadRequest, "Wrong password or email"},
	{services.ErrEmptyRequest, http.StatusBadRequest, "Request has empty fields"},
	{services.ErrEmailInvalid, http.StatusBadRequest, "Email is not valid"},
	{services.ErrPasswordMismatch, http.StatusBadRequest, "Passwords don't match"},
	{services.ErrMalformedRequest, http.StatusBadRequest, "Malformed request"},
	{services.ErrEmailTaken, http.StatusBadRequest, "User with this email already exists"},
	{services.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{services.ErrForbidden, http.StatusForbidden, "Forbidden"},
}

// MapError translates a failure into an HTTP status and response body.
// Unknown failures map to 500 without exposing the cause.
func MapError(err error) (int, models.BaseResponse) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, models.BaseResponse{Message: e.message}
		}
	}
	return http.StatusInternalServerError, models.BaseResponse{Message: messageUnexpected}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := MapError(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("internal server error", "uri", r.RequestURI, "err", err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
