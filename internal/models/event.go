package models

// UserSignedUpEvent is published to Kafka after a successful sign-up.
type UserSignedUpEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the sign-up.
	UserID    int64  `json:"user_id"`   // UserID is the identifier of the new user.
	Email     string `json:"email"`     // Email of the new user.
	Forename  string `json:"forename"`  // Forename is used to personalise the welcome notification.
}
