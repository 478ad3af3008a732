package models

// SignUpRequest represents the JSON body for user registration
// swagger:model SignUpRequest
type SignUpRequest struct {
	// required: true
	// example: ada@example.com
	Email string `json:"email"`

	// required: true
	// example: Ada
	Forename string `json:"forename"`

	// required: true
	// example: Lovelace
	Surname string `json:"surname"`

	// required: true
	// example: secret123
	Password string `json:"password"`

	// required: true
	// example: secret123
	ConfirmPassword string `json:"confirmPassword"`
}

// SignInRequest represents the JSON body for user login
// swagger:model SignInRequest
type SignInRequest struct {
	// required: true
	// example: ada@example.com
	Email string `json:"email"`

	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse is returned by sign-up and sign-in.
// SessionToken is filled in by the handler after the auth-service call.
// swagger:model LoginResponse
type LoginResponse struct {
	// example: 1
	ID int64 `json:"id"`

	// example: ada@example.com
	Email string `json:"email"`

	// example: Ada
	Forename string `json:"forename"`

	// example: Lovelace
	Surname string `json:"surname"`

	// example: Analytical Engines Ltd
	Organisation string `json:"organisation"`

	// example: 0
	Points int `json:"points"`

	// Session token issued by the auth-service
	// example: eyJhbGciOiJIUzI1NiIs...
	SessionToken string `json:"sessionToken"`
}
