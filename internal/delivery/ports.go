// Package delivery fans created notifications out to external channels
// (email, real-time broadcast, push) on a worker pool, decoupled from the
// request that produced them.
package delivery

import (
	"context"

	"laborlink/internal/domain/notification"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
)

// RecipientContact is the delivery-relevant slice of a user record.
type RecipientContact struct {
	UserID      uuid.UUID
	Email       string
	DeviceToken *string
}

type ContactReadStore interface {
	FindContact(ctx context.Context, userID uuid.UUID) (*RecipientContact, error)
}

type NotificationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.NotificationView, error)
}

type StatusWriter interface {
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status notification.DeliveryStatus) error
}

// EmailSender submits one message to the mail transport synchronously.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Publisher fans a payload out to zero or more live listeners on a topic.
// Fire-and-forget: absence of a connected session is not an error.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// PushGateway submits a notification to an external push service for a
// registered device token.
type PushGateway interface {
	Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
