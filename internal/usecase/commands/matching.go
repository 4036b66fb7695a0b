package commands

import (
	"context"
	"log/slog"

	"laborlink/internal/domain/job"
	"laborlink/internal/domain/matching"
	"laborlink/internal/domain/notification"
	"laborlink/internal/infra"
	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrJobPostingNotFound = errs.New("job posting not found")
	ErrCandidateScan      = errs.New("failed to load candidate laborers")
)

// MatchingCommands runs the skill/proximity matching pass for a posting and
// records the resulting notifications.
type MatchingCommands interface {
	JobCreatedHook
	NotifyMatches(ctx context.Context, jobID uuid.UUID) error
}

type matchingCommandsImpl struct {
	jobs          JobMatchReadStore
	laborers      LaborerReadStore
	notifications NotificationRepository
	dispatcher    Dispatcher
	clock         clock.Clock
	logger        *slog.Logger
}

func NewMatchingCommands(
	jobs JobMatchReadStore,
	laborers LaborerReadStore,
	notifications NotificationRepository,
	dispatcher Dispatcher,
	clk clock.Clock,
	logger *slog.Logger,
) MatchingCommands {
	return &matchingCommandsImpl{
		jobs:          jobs,
		laborers:      laborers,
		notifications: notifications,
		dispatcher:    dispatcher,
		clock:         clk,
		logger:        logger,
	}
}

// OnJobPostingCreated satisfies JobCreatedHook. Matching failures stay
// invisible to the request that created the posting.
func (m *matchingCommandsImpl) OnJobPostingCreated(ctx context.Context, jobID uuid.UUID) {
	if err := m.NotifyMatches(ctx, jobID); err != nil {
		m.logger.Error("matching pass failed", "job_id", jobID, "error", err)
	}
}

func (m *matchingCommandsImpl) NotifyMatches(ctx context.Context, jobID uuid.UUID) error {
	spec, err := m.jobs.FindMatchSpec(ctx, jobID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrJobPostingNotFound)
		}
		return err
	}

	if spec.Status != job.StatusOpen {
		return nil
	}

	m.logger.Info("new job posting created", "job_id", jobID, "title", spec.Job.Title)

	if len(spec.Job.RequiredSkills) == 0 {
		m.logger.Warn("job posting has no required skills defined", "job_id", jobID)
		return nil
	}

	candidates, err := m.laborers.FindAvailableCandidates(ctx)
	if err != nil {
		return errs.Mark(err, ErrCandidateScan)
	}

	matches := matching.FindMatches(spec.Job, candidates)
	m.logger.Info("matching pass completed", "job_id", jobID, "candidates", len(candidates), "matches", len(matches))

	created := 0
	for _, match := range matches {
		message := matching.ComposeAlertMessage(spec.Job, match)

		n, err := notification.NewNotification(match.UserID, notification.TypeNewJobPosting, message, m.clock.Now())
		if err != nil {
			// One bad candidate must not abort the rest of the batch.
			m.logger.Error("failed to build match notification", "job_id", jobID, "laborer_id", match.LaborerID, "error", err)
			continue
		}

		if err := m.notifications.Create(ctx, n); err != nil {
			m.logger.Error("failed to create match notification", "job_id", jobID, "laborer_id", match.LaborerID, "error", err)
			continue
		}
		created++

		m.enqueue(ctx, n.ID())
	}

	m.logger.Info("match notifications created", "job_id", jobID, "count", created)

	if created == 0 {
		return nil
	}

	summary, err := notification.NewNotification(
		spec.EmployerUserID,
		notification.TypeApplicationStatus,
		matching.ComposeSummaryMessage(spec.Job, created),
		m.clock.Now(),
	)
	if err != nil {
		return err
	}
	if err := m.notifications.Create(ctx, summary); err != nil {
		return err
	}
	m.enqueue(ctx, summary.ID())

	return nil
}

// enqueue hands a notification to the delivery dispatcher. Delivery is
// best-effort from the matcher's perspective; a full queue is logged only.
func (m *matchingCommandsImpl) enqueue(ctx context.Context, notificationID uuid.UUID) {
	if err := m.dispatcher.Dispatch(ctx, notificationID); err != nil {
		m.logger.Error("failed to queue notification delivery", "notification_id", notificationID, "error", err)
	}
}
