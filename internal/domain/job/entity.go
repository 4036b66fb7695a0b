package job

import (
	"strings"
	"time"

	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errs.New("job title cannot be empty")
	ErrInvalidBudgetRange = errs.New("budget range is invalid")
	ErrInvalidWorkType    = errs.New("invalid work type")
	ErrInvalidStatus      = errs.New("invalid job status")
	ErrInvalidMaxDistance = errs.New("max distance must be positive")
	ErrPartialCoordinate  = errs.New("latitude and longitude must be set together")
)

const DefaultMaxDistanceKM = 50

type JobPosting struct {
	id            uuid.UUID
	employerID    uuid.UUID
	title         string
	description   string
	workType      WorkType
	budgetMin     float64
	budgetMax     float64
	location      string
	latitude      *float64
	longitude     *float64
	maxDistanceKM int
	status        Status
	skillIDs      []uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewJobPosting(
	employerID uuid.UUID,
	title, description string,
	workType WorkType,
	budgetMin, budgetMax float64,
	location string,
	latitude, longitude *float64,
	maxDistanceKM int,
	skillIDs []uuid.UUID,
	now time.Time,
) (*JobPosting, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if !workType.IsValid() {
		return nil, ErrInvalidWorkType
	}
	if budgetMin < 0 || budgetMax < budgetMin {
		return nil, ErrInvalidBudgetRange
	}
	if (latitude == nil) != (longitude == nil) {
		return nil, ErrPartialCoordinate
	}
	if maxDistanceKM <= 0 {
		maxDistanceKM = DefaultMaxDistanceKM
	}

	return &JobPosting{
		id:            uuid.New(),
		employerID:    employerID,
		title:         strings.TrimSpace(title),
		description:   description,
		workType:      workType,
		budgetMin:     budgetMin,
		budgetMax:     budgetMax,
		location:      location,
		latitude:      latitude,
		longitude:     longitude,
		maxDistanceKM: maxDistanceKM,
		status:        StatusOpen,
		skillIDs:      skillIDs,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructJobPosting(
	id, employerID uuid.UUID,
	title, description string,
	workType WorkType,
	budgetMin, budgetMax float64,
	location string,
	latitude, longitude *float64,
	maxDistanceKM int,
	status Status,
	skillIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *JobPosting {
	return &JobPosting{
		id:            id,
		employerID:    employerID,
		title:         title,
		description:   description,
		workType:      workType,
		budgetMin:     budgetMin,
		budgetMax:     budgetMax,
		location:      location,
		latitude:      latitude,
		longitude:     longitude,
		maxDistanceKM: maxDistanceKM,
		status:        status,
		skillIDs:      skillIDs,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (j *JobPosting) IsOpen() bool {
	return j.status == StatusOpen
}

func (j *JobPosting) ID() uuid.UUID         { return j.id }
func (j *JobPosting) EmployerID() uuid.UUID { return j.employerID }
func (j *JobPosting) Title() string         { return j.title }
func (j *JobPosting) Description() string   { return j.description }
func (j *JobPosting) WorkType() WorkType    { return j.workType }
func (j *JobPosting) BudgetMin() float64    { return j.budgetMin }
func (j *JobPosting) BudgetMax() float64    { return j.budgetMax }
func (j *JobPosting) Location() string      { return j.location }
func (j *JobPosting) Latitude() *float64    { return j.latitude }
func (j *JobPosting) Longitude() *float64   { return j.longitude }
func (j *JobPosting) MaxDistanceKM() int    { return j.maxDistanceKM }
func (j *JobPosting) Status() Status        { return j.status }
func (j *JobPosting) SkillIDs() []uuid.UUID { return j.skillIDs }
func (j *JobPosting) CreatedAt() time.Time  { return j.createdAt }
func (j *JobPosting) UpdatedAt() time.Time  { return j.updatedAt }
