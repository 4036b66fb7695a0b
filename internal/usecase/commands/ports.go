package commands

import (
	"context"
	"time"

	"laborlink/internal/domain/job"
	"laborlink/internal/domain/matching"
	"laborlink/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

// JobMatchSpec is everything the matcher needs about one posting.
type JobMatchSpec struct {
	Job            matching.JobSpec
	EmployerUserID uuid.UUID
	Status         job.Status
}

type JobMatchReadStore interface {
	FindMatchSpec(ctx context.Context, jobID uuid.UUID) (*JobMatchSpec, error)
}

type LaborerReadStore interface {
	// FindAvailableCandidates returns every laborer with the availability
	// flag set, together with its skill ids and optional preferred location.
	FindAvailableCandidates(ctx context.Context) ([]matching.Candidate, error)
}

type JobRepository interface {
	Create(ctx context.Context, tx pgx.Tx, posting *job.JobPosting) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	UpdateReadState(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) (int64, error)
}

// Dispatcher queues a created notification for out-of-band delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, notificationID uuid.UUID) error
}

// JobCreatedHook is invoked synchronously by the job-creation command exactly
// once per successful insert. It fires on creation only, never on update, so
// re-saving an existing posting cannot re-trigger matching.
type JobCreatedHook interface {
	OnJobPostingCreated(ctx context.Context, jobID uuid.UUID)
}
