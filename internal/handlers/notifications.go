package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

//go:generate mockgen -source=notifications.go -destination=mock_notifications.go -package=handlers

// NotificationsGetter returns the notifications of a user.
type NotificationsGetter interface {
	GetUserNotifications(ctx context.Context, userID int64) ([]models.NotificationDTO, error)
}

// NotificationRemover deletes notifications.
type NotificationRemover interface {
	RemoveNotification(ctx context.Context, id int64) (bool, error)
}

// NewGetNotificationsHandler returns an HTTP handler that lists the
// notifications of the user given by the userId query parameter.
func NewGetNotificationsHandler(svc NotificationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requiredQueryInt64(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		notifications, err := svc.GetUserNotifications(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, notifications)
	}
}

// NewRemoveNotificationHandler returns an HTTP handler that deletes one notification.
func NewRemoveNotificationHandler(svc NotificationRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requiredQueryInt64(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		removed, err := svc.RemoveNotification(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !removed {
			writeError(w, r, services.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, models.RemovedResponse{Removed: true})
	}
}
