package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/mappers"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/repositories"
)

//go:generate mockgen -source=notification.go -destination=mock_notification.go -package=services

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	FindAllByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	GetByID(ctx context.Context, id int64) (*models.NotificationDB, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	Save(ctx context.Context, userID int64, message string) (int64, error)
	RemoveByID(ctx context.Context, id int64) error
}

// NotificationService handles user notifications.
type NotificationService struct {
	reader NotificationReader
	writer NotificationWriter
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(reader NotificationReader, writer NotificationWriter) *NotificationService {
	return &NotificationService{reader: reader, writer: writer}
}

// GetUserNotifications returns every notification of a user.
func (svc *NotificationService) GetUserNotifications(ctx context.Context, userID int64) ([]models.NotificationDTO, error) {
	notifications, err := svc.reader.FindAllByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list notifications", "user_id", userID, "err", err)
		return nil, err
	}
	return mappers.MapNotifications(notifications), nil
}

// RemoveNotification deletes a notification. It reports false when
// there was nothing to delete.
func (svc *NotificationService) RemoveNotification(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	notification, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get notification", "id", id, "err", err)
		return false, err
	}
	if notification == nil {
		return false, nil
	}

	if err := svc.writer.RemoveByID(ctx, id); err != nil {
		log.Errorw("failed to remove notification", "id", id, "err", err)
		return false, err
	}
	return true, nil
}

// HandleUserSignedUp stores a welcome notification for a new user.
// A user deleted before the event arrived is skipped.
func (svc *NotificationService) HandleUserSignedUp(ctx context.Context, evt models.UserSignedUpEvent) error {
	if evt.UserID <= 0 {
		return fmt.Errorf("sign-up event %s: %w", evt.EventID, ErrEmptyRequest)
	}

	message := "Welcome to the blog!"
	if evt.Forename != "" {
		message = fmt.Sprintf("Welcome to the blog, %s!", evt.Forename)
	}

	id, err := svc.writer.Save(ctx, evt.UserID, message)
	if errors.Is(err, repositories.ErrReferenceNotFound) {
		logger.FromContext(ctx).Warnw("skipping welcome notification for missing user", "user_id", evt.UserID)
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save welcome notification", "user_id", evt.UserID, "err", err)
		return err
	}

	logger.FromContext(ctx).Infow("welcome notification stored", "user_id", evt.UserID, "notification_id", id)
	return nil
}
