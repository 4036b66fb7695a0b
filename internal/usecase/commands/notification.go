package commands

import (
	"context"

	"laborlink/internal/domain/notification"
	"laborlink/internal/infra"
	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/errs"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	MarkAllRead(ctx context.Context, actorID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	store queries.NotificationReadStore
	repo  NotificationRepository
	clock clock.Clock
}

func NewNotificationCommands(
	store queries.NotificationReadStore,
	repo NotificationRepository,
	clk clock.Clock,
) NotificationCommands {
	return &notificationCommandsImpl{
		store: store,
		repo:  repo,
		clock: clk,
	}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	view, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotificationNotFound)
		}
		return err
	}

	entity := notification.ReconstructNotification(
		view.ID,
		view.RecipientID,
		notification.Type(view.Type),
		view.Message,
		view.IsRead,
		notification.DeliveryStatus(view.Status),
		view.CreatedAt,
		view.ReadAt,
	)

	now := c.clock.Now()
	if err := entity.MarkRead(actorID, now); err != nil {
		return err
	}

	return c.repo.UpdateReadState(ctx, id, now)
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, actorID uuid.UUID) (int64, error) {
	return c.repo.MarkAllRead(ctx, actorID, c.clock.Now())
}
