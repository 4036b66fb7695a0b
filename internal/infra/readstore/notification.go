package readstore

import (
	"context"
	"errors"

	"laborlink/internal/infra"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationReadStore struct {
	db *pgxpool.Pool
}

func NewNotificationReadStore(db *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

const notificationViewQuery = `
SELECT n.id, n.recipient_id, n.type, n.message, n.is_read, n.status, n.created_at, n.read_at
FROM notifications n
`

func (s *NotificationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NotificationView, error) {
	row := s.db.QueryRow(ctx, notificationViewQuery+"WHERE n.id = $1", id)

	view, err := scanNotificationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find notification", err)
	}

	return view, nil
}

func (s *NotificationReadStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, notificationViewQuery+"WHERE n.recipient_id = $1 ORDER BY n.created_at DESC LIMIT $2", recipientID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		view, err := scanNotificationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notifications", err)
	}

	return views, nil
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = false",
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}

type notificationRowScanner interface {
	Scan(dest ...any) error
}

func scanNotificationView(row notificationRowScanner) (*queries.NotificationView, error) {
	var view queries.NotificationView
	err := row.Scan(
		&view.ID,
		&view.RecipientID,
		&view.Type,
		&view.Message,
		&view.IsRead,
		&view.Status,
		&view.CreatedAt,
		&view.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
