package dto

import (
	"time"

	"talent-match/internal/repository"
	"talent-match/internal/usecase"
)

type RoleResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoleRequirementResponse struct {
	SkillID            int64   `json:"skill_id"`
	SkillName          string  `json:"skill_name"`
	Importance         float64 `json:"importance"`
	MinimumProficiency int     `json:"minimum_proficiency"`
}

type RoleDetailResponse struct {
	RoleResponse
	Requirements []RoleRequirementResponse `json:"requirements"`
}

func FromRole(r repository.JobRole) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Department:  r.Department,
		CreatedAt:   r.CreatedAt,
	}
}

func FromRoles(items []repository.JobRole) []RoleResponse {
	out := make([]RoleResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRole(r))
	}
	return out
}

func FromRoleDetail(d usecase.RoleDetail) RoleDetailResponse {
	reqs := make([]RoleRequirementResponse, 0, len(d.Requirements))
	for _, r := range d.Requirements {
		reqs = append(reqs, RoleRequirementResponse{
			SkillID:            r.SkillID,
			SkillName:          r.SkillName,
			Importance:         r.Importance,
			MinimumProficiency: r.MinimumProficiency,
		})
	}
	return RoleDetailResponse{
		RoleResponse: FromRole(d.Role),
		Requirements: reqs,
	}
}
