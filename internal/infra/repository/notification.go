package repository

import (
	"context"
	"time"

	"laborlink/internal/domain/notification"
	"laborlink/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO notifications (id, recipient_id, type, message, is_read, status, created_at, read_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID(),
		n.RecipientID(),
		n.Kind().String(),
		n.Message(),
		n.IsRead(),
		n.Status().String(),
		n.CreatedAt(),
		n.ReadAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}

func (r *NotificationRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status notification.DeliveryStatus) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE notifications SET status = $2 WHERE id = $1",
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update delivery status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) UpdateReadState(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE notifications SET is_read = true, read_at = $2 WHERE id = $1",
		id, readAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE notifications SET is_read = true, read_at = $2 WHERE recipient_id = $1 AND is_read = false",
		recipientID, readAt,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteReadOlderThan purges read notifications created before the cutoff.
// Used by the housekeeping job only; the core never deletes.
func (r *NotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM notifications WHERE is_read = true AND created_at < $1",
		cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete old notifications", err)
	}
	return tag.RowsAffected(), nil
}
