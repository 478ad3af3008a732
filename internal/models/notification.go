package models

import "time"

// NotificationDB is a row of notifications
type NotificationDB struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// NotificationDTO is the public view of a notification
type NotificationDTO struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"userId"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
