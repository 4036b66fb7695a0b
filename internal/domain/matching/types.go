package matching

import "github.com/google/uuid"

// JobSpec is the matching-relevant slice of a job posting. RequiredSkills
// preserves the posting's skill order so composed messages are stable.
type JobSpec struct {
	ID             uuid.UUID
	Title          string
	Location       string
	Coordinate     *Coordinate
	MaxDistanceKM  float64
	BudgetMin      string
	BudgetMax      string
	RequiredSkills []SkillRef
}

type SkillRef struct {
	ID   uuid.UUID
	Name string
}

// Candidate is an available laborer considered for a posting.
type Candidate struct {
	LaborerID    uuid.UUID
	UserID       uuid.UUID
	Coordinate   *Coordinate
	MaxTravelKM  float64
	SkillIDs     []uuid.UUID
}

// Match is one laborer eligible for notification about a posting.
// DistanceKM is set only when both sides had a coordinate and the laborer
// passed the proximity check; it is rounded to two decimal places.
type Match struct {
	LaborerID       uuid.UUID
	UserID          uuid.UUID
	MatchedSkillIDs []uuid.UUID
	DistanceKM      *float64
}
