package queries

import (
	"context"
	"time"

	"laborlink/internal/infra"
	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errs.New("notification not found")
	ErrNotificationAccess   = errs.New("access to notification denied")
)

type NotificationView struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Type        string     `json:"type"`
	Message     string     `json:"message"`
	IsRead      bool       `json:"is_read"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}

type NotificationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*NotificationView, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*NotificationView, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*NotificationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	if view.RecipientID != actorID {
		return nil, ErrNotificationAccess
	}
	return view, nil
}

func (q *notificationQueriesImpl) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*NotificationView, error) {
	return q.store.FindByRecipient(ctx, recipientID, int32(ValidateLimit(limit)))
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	return q.store.CountUnread(ctx, recipientID)
}
