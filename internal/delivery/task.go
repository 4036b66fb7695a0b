package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"laborlink/internal/domain/notification"
	"laborlink/internal/infra"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
)

// Task delivers one notification across the configured channels. Channels
// are independent: they may complete in any order or partially, and no
// channel failure blocks or reverses the notification itself.
type Task struct {
	notifications NotificationReader
	statuses      StatusWriter
	contacts      ContactReadStore
	email         EmailSender
	realtime      Publisher
	push          PushGateway
	policy        BackoffPolicy
	logger        *slog.Logger
}

func NewTask(
	notifications NotificationReader,
	statuses StatusWriter,
	contacts ContactReadStore,
	email EmailSender,
	realtime Publisher,
	push PushGateway,
	policy BackoffPolicy,
	logger *slog.Logger,
) *Task {
	return &Task{
		notifications: notifications,
		statuses:      statuses,
		contacts:      contacts,
		email:         email,
		realtime:      realtime,
		push:          push,
		policy:        policy,
		logger:        logger,
	}
}

func (t *Task) Run(ctx context.Context, notificationID uuid.UUID) {
	view, err := t.notifications.FindByID(ctx, notificationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			t.logger.Error("notification not found", "notification_id", notificationID)
			return
		}
		t.logger.Error("failed to load notification", "notification_id", notificationID, "error", err)
		return
	}

	contact, err := t.contacts.FindContact(ctx, view.RecipientID)
	if err != nil {
		t.logger.Error("failed to load recipient contact", "notification_id", notificationID, "recipient_id", view.RecipientID, "error", err)
		return
	}

	t.deliverRealtime(ctx, view)
	t.deliverEmail(ctx, view, contact)
	t.deliverPush(ctx, view, contact)
}

func (t *Task) deliverEmail(ctx context.Context, view *queries.NotificationView, contact *RecipientContact) {
	if contact.Email == "" {
		t.logger.Warn("no email address for recipient", "recipient_id", contact.UserID)
		return
	}

	subject := fmt.Sprintf("LaborLink Notification: %s", view.Type)

	attempts, err := Retry(ctx, t.policy, func(callCtx context.Context) error {
		return t.email.Send(callCtx, contact.Email, subject, view.Message)
	})
	if err != nil {
		if IsPermanent(err) {
			// Only an explicit rejection marks the notification FAILED.
			t.logger.Error("email delivery rejected", "notification_id", view.ID, "attempts", attempts, "error", err)
			t.setStatus(ctx, view.ID, notification.StatusFailed)
			return
		}
		// Exhausted retries leave the status SENT.
		t.logger.Error("email delivery failed after retries", "notification_id", view.ID, "attempts", attempts, "error", err)
		return
	}

	t.logger.Info("email notification sent", "notification_id", view.ID, "attempts", attempts)
	t.setStatus(ctx, view.ID, notification.StatusDelivered)
}

func (t *Task) deliverRealtime(ctx context.Context, view *queries.NotificationView) {
	payload, err := json.Marshal(map[string]any{
		"id":         view.ID,
		"type":       view.Type,
		"message":    view.Message,
		"is_read":    view.IsRead,
		"created_at": view.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		t.logger.Error("failed to encode realtime payload", "notification_id", view.ID, "error", err)
		return
	}

	topic := RecipientTopic(view.RecipientID)
	if err := t.realtime.Publish(ctx, topic, payload); err != nil {
		t.logger.Error("realtime publish failed", "notification_id", view.ID, "topic", topic, "error", err)
		return
	}

	t.logger.Info("realtime notification published", "notification_id", view.ID, "topic", topic)
}

func (t *Task) deliverPush(ctx context.Context, view *queries.NotificationView, contact *RecipientContact) {
	if contact.DeviceToken == nil || *contact.DeviceToken == "" {
		return
	}

	data := map[string]string{
		"notification_id": view.ID.String(),
		"type":            view.Type,
	}

	attempts, err := Retry(ctx, t.policy, func(callCtx context.Context) error {
		return t.push.Send(callCtx, *contact.DeviceToken, "LaborLink", view.Message, data)
	})
	if err != nil {
		t.logger.Error("push delivery failed", "notification_id", view.ID, "attempts", attempts, "error", err)
		return
	}

	t.logger.Info("push notification sent", "notification_id", view.ID, "attempts", attempts)
}

func (t *Task) setStatus(ctx context.Context, id uuid.UUID, status notification.DeliveryStatus) {
	if err := t.statuses.UpdateDeliveryStatus(ctx, id, status); err != nil {
		t.logger.Error("failed to update delivery status", "notification_id", id, "status", status, "error", err)
	}
}

// RecipientTopic is the per-user broadcast channel a live client session
// subscribes to.
func RecipientTopic(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:notifications", userID)
}
