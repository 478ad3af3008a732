package models

// CreateTokenRequest is the body of POST /token on the auth-service
type CreateTokenRequest struct {
	UserID int64 `json:"userId"`
}

// VerifyTokenResponse is returned by GET /token/verify
type VerifyTokenResponse struct {
	UserID int64 `json:"userId"`
}
