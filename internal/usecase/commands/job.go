package commands

import (
	"context"
	"errors"
	"log/slog"

	"laborlink/internal/domain/job"
	reqdto "laborlink/internal/handler/dto/request"
	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/errs"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrJobValidation           = errs.New("job posting validation failed")
	ErrUnknownSkill            = errs.New("unknown skill id")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateJobResult struct {
	Job *queries.JobView
}

type JobCommands interface {
	Create(ctx context.Context, req reqdto.CreateJobRequest, employerID uuid.UUID) (*CreateJobResult, error)
}

type jobCommandsImpl struct {
	jobRepo    JobRepository
	jobQueries queries.JobQueries
	hook       JobCreatedHook
	db         *pgxpool.Pool
	clock      clock.Clock
	logger     *slog.Logger
}

func NewJobCommands(
	jobRepo JobRepository,
	jobQueries queries.JobQueries,
	hook JobCreatedHook,
	db *pgxpool.Pool,
	clk clock.Clock,
	logger *slog.Logger,
) JobCommands {
	return &jobCommandsImpl{
		jobRepo:    jobRepo,
		jobQueries: jobQueries,
		hook:       hook,
		db:         db,
		clock:      clk,
		logger:     logger,
	}
}

func (c *jobCommandsImpl) Create(ctx context.Context, req reqdto.CreateJobRequest, employerID uuid.UUID) (*CreateJobResult, error) {
	skillIDs, err := req.SkillIDs()
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownSkill)
	}

	posting, err := job.NewJobPosting(
		employerID,
		req.Title,
		req.Description,
		job.WorkType(req.WorkType),
		req.BudgetMin,
		req.BudgetMax,
		req.Location,
		req.Latitude,
		req.Longitude,
		req.MaxDistanceKM,
		skillIDs,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrJobValidation)
	}

	if err := c.insertPosting(ctx, posting); err != nil {
		return nil, err
	}

	// Fires exactly once per insert; the matching pass runs synchronously but
	// its outcome never affects the creation result.
	c.hook.OnJobPostingCreated(ctx, posting.ID())

	view, err := c.jobQueries.GetByID(ctx, posting.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateJobResult{Job: view}, nil
}

func (c *jobCommandsImpl) insertPosting(ctx context.Context, posting *job.JobPosting) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			c.logger.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.jobRepo.Create(ctx, tx, posting); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
