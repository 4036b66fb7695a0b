package notification

import (
	"strings"
	"time"

	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidType    = errs.New("invalid notification type")
	ErrEmptyMessage   = errs.New("notification message cannot be empty")
	ErrInvalidStatus  = errs.New("invalid delivery status")
	ErrAlreadyRead    = errs.New("notification is already read")
	ErrNotRecipient   = errs.New("user is not the notification recipient")
)

type Notification struct {
	id          uuid.UUID
	recipientID uuid.UUID
	kind        Type
	message     string
	isRead      bool
	status      DeliveryStatus
	createdAt   time.Time
	readAt      *time.Time
}

// NewNotification creates an unread notification with delivery status SENT.
func NewNotification(recipientID uuid.UUID, kind Type, message string, now time.Time) (*Notification, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	return &Notification{
		id:          uuid.New(),
		recipientID: recipientID,
		kind:        kind,
		message:     message,
		isRead:      false,
		status:      StatusSent,
		createdAt:   now,
	}, nil
}

func ReconstructNotification(
	id, recipientID uuid.UUID,
	kind Type,
	message string,
	isRead bool,
	status DeliveryStatus,
	createdAt time.Time,
	readAt *time.Time,
) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		kind:        kind,
		message:     message,
		isRead:      isRead,
		status:      status,
		createdAt:   createdAt,
		readAt:      readAt,
	}
}

// MarkRead transitions the read state. Only the recipient may read.
func (n *Notification) MarkRead(actorID uuid.UUID, now time.Time) error {
	if actorID != n.recipientID {
		return ErrNotRecipient
	}
	if n.isRead {
		return ErrAlreadyRead
	}
	n.isRead = true
	n.readAt = &now
	return nil
}

// MarkDelivered records a successful delivery on at least one channel.
func (n *Notification) MarkDelivered() {
	n.status = StatusDelivered
}

// MarkFailed records an explicit delivery rejection. Retry exhaustion does
// not call this; the status stays SENT in that case.
func (n *Notification) MarkFailed() {
	n.status = StatusFailed
}

func (n *Notification) ID() uuid.UUID          { return n.id }
func (n *Notification) RecipientID() uuid.UUID { return n.recipientID }
func (n *Notification) Kind() Type             { return n.kind }
func (n *Notification) Message() string        { return n.message }
func (n *Notification) IsRead() bool           { return n.isRead }
func (n *Notification) Status() DeliveryStatus { return n.status }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }
func (n *Notification) ReadAt() *time.Time     { return n.readAt }
