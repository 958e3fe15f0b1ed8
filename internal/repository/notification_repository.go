package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gpsphere-backend/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	CreateIfAbsent(ctx context.Context, notif *domain.Notification) (bool, error)
	ReminderExists(ctx context.Context, userID uuid.UUID, relatedID uuid.UUID, notifType domain.NotificationType) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) (bool, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, related_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.Type, notif.Title, notif.Message, notif.RelatedID,
	).Scan(&notif.CreatedAt)
}

// CreateIfAbsent inserts the notification unless a row with the same
// (user_id, related_id, type) already exists. The unique index is the
// authoritative guard against duplicates under concurrent runs; a conflict
// is reported as created=false, not an error. The index is partial, so the
// ON CONFLICT target must repeat its predicate for Postgres to infer it.
func (r *notificationRepository) CreateIfAbsent(ctx context.Context, notif *domain.Notification) (bool, error) {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, related_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, related_id, type) WHERE related_id IS NOT NULL DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		notif.ID, notif.UserID, notif.Type, notif.Title, notif.Message, notif.RelatedID,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

func (r *notificationRepository) ReminderExists(ctx context.Context, userID uuid.UUID, relatedID uuid.UUID, notifType domain.NotificationType) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND related_id = $2 AND type = $3
		)`
	err := r.db.GetContext(ctx, &exists, query, userID, relatedID, notifType)
	return exists, err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	var total int64
	var notifications []domain.Notification

	if unreadOnly {
		countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
		if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM notifications
			WHERE user_id = $1 AND is_read = false
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset())
		return notifications, total, err
	}

	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset())
	return notifications, total, err
}

// MarkAsRead flips is_read on the row matching both id and owner. Zero rows
// affected means the row is missing or owned by someone else; callers treat
// both the same way.
func (r *notificationRepository) MarkAsRead(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2 AND is_read = false`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows > 0 {
		return true, nil
	}

	// Already-read rows are a no-op, not a missing row.
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM notifications WHERE id = $1 AND user_id = $2)`
	if err := r.db.GetContext(ctx, &exists, checkQuery, id, userID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}
