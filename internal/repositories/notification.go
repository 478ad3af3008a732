package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-ms/internal/models"
)

type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

func (r *NotificationReadRepository) FindAllByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	const query = `
		SELECT id, user_id, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logQuery(ctx, query, []any{userID}, len(notifications), err)

	return notifications, err
}

func (r *NotificationReadRepository) GetByID(ctx context.Context, id int64) (*models.NotificationDB, error) {
	const query = `SELECT id, user_id, message, created_at FROM notifications WHERE id = $1`

	var notification models.NotificationDB
	err := r.db.GetContext(ctx, &notification, query, id)

	logQuery(ctx, query, []any{id}, notification.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

type NotificationWriteRepository struct {
	db *sqlx.DB
}

func NewNotificationWriteRepository(db *sqlx.DB) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db}
}

func (r *NotificationWriteRepository) Save(ctx context.Context, userID int64, message string) (int64, error) {
	const query = `
		INSERT INTO notifications (user_id, message, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`
	args := []any{userID, message}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(ctx, query, args, id, err)

	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

func (r *NotificationWriteRepository) RemoveByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM notifications WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	return err
}
