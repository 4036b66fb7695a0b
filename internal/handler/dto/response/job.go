package response

import (
	"laborlink/internal/usecase/queries"
)

type SkillResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type JobResponse struct {
	ID             string          `json:"id"`
	EmployerID     string          `json:"employer_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	WorkType       string          `json:"work_type"`
	BudgetMin      string          `json:"budget_min"`
	BudgetMax      string          `json:"budget_max"`
	Location       string          `json:"location"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	MaxDistanceKM  int32           `json:"max_distance_km"`
	Status         string          `json:"status"`
	RequiredSkills []SkillResponse `json:"required_skills"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}

func FromJobView(v *queries.JobView) *JobResponse {
	skills := make([]SkillResponse, len(v.RequiredSkills))
	for i, s := range v.RequiredSkills {
		skills[i] = SkillResponse{
			ID:       s.ID.String(),
			Name:     s.Name,
			Category: s.Category,
		}
	}

	return &JobResponse{
		ID:             v.ID.String(),
		EmployerID:     v.EmployerID.String(),
		Title:          v.Title,
		Description:    v.Description,
		WorkType:       v.WorkType,
		BudgetMin:      v.BudgetMin,
		BudgetMax:      v.BudgetMax,
		Location:       v.Location,
		Latitude:       v.Latitude,
		Longitude:      v.Longitude,
		MaxDistanceKM:  v.MaxDistanceKM,
		Status:         v.Status,
		RequiredSkills: skills,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

func FromJobList(items []*queries.JobView) []*JobResponse {
	res := make([]*JobResponse, len(items))
	for i, it := range items {
		res[i] = FromJobView(it)
	}
	return res
}
