package dto

import (
	"time"

	"talent-match/internal/repository"
)

type UpsertSkillRequest struct {
	SkillID     int64  `json:"skill_id"`
	Proficiency int    `json:"proficiency"`
	Verified    bool   `json:"verified"`
	Source      string `json:"source"`
}

type UserSkillResponse struct {
	SkillID      int64      `json:"skill_id"`
	SkillName    string     `json:"skill_name"`
	Proficiency  int        `json:"proficiency"`
	Verified     bool       `json:"verified"`
	Source       string     `json:"source"`
	LastVerified *time.Time `json:"last_verified,omitempty"`
}

func FromPossession(p repository.Possession) UserSkillResponse {
	return UserSkillResponse{
		SkillID:      p.SkillID,
		SkillName:    p.SkillName,
		Proficiency:  p.Proficiency,
		Verified:     p.Verified,
		Source:       p.Source,
		LastVerified: p.LastVerified,
	}
}

func FromPossessions(items []repository.Possession) []UserSkillResponse {
	out := make([]UserSkillResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPossession(p))
	}
	return out
}
