package mappers

import "github.com/sbilibin2017/blog-ms/internal/models"

// MapNotifications converts notification rows; the result is never nil.
func MapNotifications(notifications []models.NotificationDB) []models.NotificationDTO {
	dtos := make([]models.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, models.NotificationDTO{
			ID:      n.ID,
			UserID:  n.UserID,
			Message: n.Message,
			Date:    n.CreatedAt,
		})
	}
	return dtos
}
