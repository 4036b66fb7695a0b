package readstore

import (
	"context"
	"errors"

	"laborlink/internal/domain/job"
	"laborlink/internal/domain/matching"
	"laborlink/internal/infra"
	"laborlink/internal/usecase/commands"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobReadStore struct {
	db *pgxpool.Pool
}

func NewJobReadStore(db *pgxpool.Pool) *JobReadStore {
	return &JobReadStore{db: db}
}

const jobViewQuery = `
SELECT j.id, j.employer_id, j.title, j.description, j.work_type,
       j.budget_min::text, j.budget_max::text, j.location,
       j.latitude, j.longitude, j.max_distance_km, j.status,
       j.created_at, j.updated_at
FROM job_postings j
`

func (s *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	row := s.db.QueryRow(ctx, jobViewQuery+"WHERE j.id = $1", id)

	view, err := scanJobView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("job posting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job posting", err)
	}

	skills, err := s.findRequiredSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	view.RequiredSkills = skills

	return view, nil
}

func (s *JobReadStore) FindOpen(ctx context.Context, limit int32) ([]*queries.JobView, error) {
	rows, err := s.db.Query(ctx, jobViewQuery+"WHERE j.status = $1 ORDER BY j.created_at DESC LIMIT $2", job.StatusOpen.String(), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open job postings", err)
	}
	defer rows.Close()

	var views []*queries.JobView
	for rows.Next() {
		view, err := scanJobView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan job posting", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read job postings", err)
	}

	for _, view := range views {
		skills, err := s.findRequiredSkills(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.RequiredSkills = skills
	}

	return views, nil
}

// FindMatchSpec loads the matching-relevant slice of one posting, including
// the employer's user id for the summary notification.
func (s *JobReadStore) FindMatchSpec(ctx context.Context, jobID uuid.UUID) (*commands.JobMatchSpec, error) {
	var (
		spec     commands.JobMatchSpec
		lat, lon *float64
		maxKM    int32
		status   string
	)

	err := s.db.QueryRow(ctx, `
SELECT j.id, j.employer_id, j.title, j.location,
       j.budget_min::text, j.budget_max::text,
       j.latitude, j.longitude, j.max_distance_km, j.status
FROM job_postings j
WHERE j.id = $1`, jobID).Scan(
		&spec.Job.ID,
		&spec.EmployerUserID,
		&spec.Job.Title,
		&spec.Job.Location,
		&spec.Job.BudgetMin,
		&spec.Job.BudgetMax,
		&lat, &lon, &maxKM, &status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("job posting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load job match spec", err)
	}

	spec.Job.Coordinate = matching.NewCoordinate(lat, lon)
	spec.Job.MaxDistanceKM = float64(maxKM)
	spec.Status = job.Status(status)

	skills, err := s.findRequiredSkills(ctx, jobID)
	if err != nil {
		return nil, err
	}
	for _, sk := range skills {
		spec.Job.RequiredSkills = append(spec.Job.RequiredSkills, matching.SkillRef{ID: sk.ID, Name: sk.Name})
	}

	return &spec, nil
}

func (s *JobReadStore) findRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]queries.SkillView, error) {
	rows, err := s.db.Query(ctx, `
SELECT sk.id, sk.name, sk.category
FROM job_required_skills jrs
JOIN skills sk ON sk.id = jrs.skill_id
WHERE jrs.job_id = $1
ORDER BY sk.name`, jobID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load required skills", err)
	}
	defer rows.Close()

	var skills []queries.SkillView
	for rows.Next() {
		var sk queries.SkillView
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category); err != nil {
			return nil, infra.WrapRepoErr("failed to scan skill", err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read skills", err)
	}

	return skills, nil
}

type jobRowScanner interface {
	Scan(dest ...any) error
}

func scanJobView(row jobRowScanner) (*queries.JobView, error) {
	var view queries.JobView
	err := row.Scan(
		&view.ID,
		&view.EmployerID,
		&view.Title,
		&view.Description,
		&view.WorkType,
		&view.BudgetMin,
		&view.BudgetMax,
		&view.Location,
		&view.Latitude,
		&view.Longitude,
		&view.MaxDistanceKM,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
