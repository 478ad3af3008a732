package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Email        string    `json:"email" db:"email"`               // Unique e-mail
	Forename     string    `json:"forename" db:"forename"`         // First name
	Surname      string    `json:"surname" db:"surname"`           // Last name
	PasswordHash string    `json:"-" db:"password_hash"`           // Bcrypt hash
	Organisation string    `json:"organisation" db:"organisation"` // Optional organisation
	Points       int       `json:"points" db:"points"`             // Reputation points
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// UserDTO is the public view of a user
// swagger:model UserDTO
type UserDTO struct {
	// example: 1
	ID int64 `json:"id"`

	// example: Ada
	Forename string `json:"forename"`

	// example: Lovelace
	Surname string `json:"surname"`

	// example: Analytical Engines Ltd
	Organisation string `json:"organisation"`

	// example: 10
	Points int `json:"points"`
}
