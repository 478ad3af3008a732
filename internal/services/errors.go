package services

import "errors"

// Failure kinds shared by every service. Handlers translate them into
// HTTP statuses; anything else is reported as an unexpected exception.
var (
	ErrEmptyRequest     = errors.New("request has empty fields")
	ErrEmailInvalid     = errors.New("email is not valid")
	ErrPasswordMismatch = errors.New("passwords don't match")
	ErrWrongCredentials = errors.New("wrong password or email")
	ErrNotFound         = errors.New("not found")
	ErrMalformedRequest = errors.New("malformed request")
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
)
