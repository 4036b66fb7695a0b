package repository

import (
	"context"

	"laborlink/internal/domain/job"
	"laborlink/internal/infra"

	"github.com/jackc/pgx/v5"
)

type JobRepository struct{}

func NewJobRepository() *JobRepository {
	return &JobRepository{}
}

func (r *JobRepository) Create(ctx context.Context, tx pgx.Tx, posting *job.JobPosting) error {
	_, err := tx.Exec(ctx, `
INSERT INTO job_postings (
    id, employer_id, title, description, work_type,
    budget_min, budget_max, location, latitude, longitude,
    max_distance_km, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		posting.ID(),
		posting.EmployerID(),
		posting.Title(),
		posting.Description(),
		posting.WorkType().String(),
		posting.BudgetMin(),
		posting.BudgetMax(),
		posting.Location(),
		posting.Latitude(),
		posting.Longitude(),
		posting.MaxDistanceKM(),
		posting.Status().String(),
		posting.CreatedAt(),
		posting.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert job posting", err)
	}

	for _, skillID := range posting.SkillIDs() {
		_, err := tx.Exec(ctx,
			"INSERT INTO job_required_skills (job_id, skill_id) VALUES ($1, $2)",
			posting.ID(), skillID,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert required skill", err, infra.KindForeignKeyViolated)
		}
	}

	return nil
}
