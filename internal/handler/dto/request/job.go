package request

import (
	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidSkillID = errs.New("invalid skill id")

type CreateJobRequest struct {
	Title            string   `json:"title" binding:"required,max=200"`
	Description      string   `json:"description" binding:"required"`
	WorkType         string   `json:"work_type" binding:"required,oneof=FULL_TIME PART_TIME CONTRACT TEMPORARY"`
	BudgetMin        float64  `json:"budget_min" binding:"min=0"`
	BudgetMax        float64  `json:"budget_max" binding:"min=0"`
	Location         string   `json:"location" binding:"max=200"`
	Latitude         *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	MaxDistanceKM    int      `json:"max_distance_km" binding:"omitempty,min=1"`
	RequiredSkillIDs []string `json:"required_skill_ids"`
}

// SkillIDs parses the raw skill ids. An empty list is allowed; such a posting
// is created but never matched.
func (r *CreateJobRequest) SkillIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.RequiredSkillIDs))
	for _, raw := range r.RequiredSkillIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidSkillID)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
