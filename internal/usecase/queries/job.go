package queries

import (
	"context"
	"time"

	"laborlink/internal/infra"
	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrJobNotFound = errs.New("job posting not found")

type SkillView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type JobView struct {
	ID             uuid.UUID   `json:"id"`
	EmployerID     uuid.UUID   `json:"employer_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	WorkType       string      `json:"work_type"`
	BudgetMin      string      `json:"budget_min"`
	BudgetMax      string      `json:"budget_max"`
	Location       string      `json:"location"`
	Latitude       *float64    `json:"latitude,omitempty"`
	Longitude      *float64    `json:"longitude,omitempty"`
	MaxDistanceKM  int32       `json:"max_distance_km"`
	Status         string      `json:"status"`
	RequiredSkills []SkillView `json:"required_skills"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type JobReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	FindOpen(ctx context.Context, limit int32) ([]*JobView, error)
}

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	ListOpen(ctx context.Context, limit int) ([]*JobView, error)
}

type jobQueriesImpl struct {
	store JobReadStore
}

func NewJobQueries(store JobReadStore) JobQueries {
	return &jobQueriesImpl{store: store}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*JobView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *jobQueriesImpl) ListOpen(ctx context.Context, limit int) ([]*JobView, error) {
	return q.store.FindOpen(ctx, int32(ValidateLimit(limit)))
}
