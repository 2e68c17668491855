package dto

import (
	"talent-match/internal/domain/match"
	"talent-match/internal/usecase"
)

type CandidateRankResponse struct {
	CandidateID     int64   `json:"candidate_id"`
	CandidateName   string  `json:"candidate_name"`
	MatchPercentage float64 `json:"match_percentage"`
	SkillMatches    int     `json:"skill_matches"`
	SkillGaps       int     `json:"skill_gaps"`
	ExcessSkills    int     `json:"excess_skills"`
}

type RoleCandidatesResponse struct {
	RoleID     int64                   `json:"role_id"`
	RoleTitle  string                  `json:"role_title"`
	Department string                  `json:"department"`
	Evaluated  int                     `json:"candidates_evaluated"`
	Candidates []CandidateRankResponse `json:"candidates"`
}

type RoleRankResponse struct {
	RoleID                int64   `json:"role_id"`
	RoleTitle             string  `json:"role_title"`
	Department            string  `json:"department"`
	MatchPercentage       float64 `json:"match_percentage"`
	SkillMatches          int     `json:"skill_matches"`
	SkillGaps             int     `json:"skill_gaps"`
	RequiredTrainingWeeks int     `json:"required_training_weeks"`
}

type CandidateRolesResponse struct {
	CandidateID   int64              `json:"candidate_id"`
	CandidateName string             `json:"candidate_name"`
	Evaluated     int                `json:"roles_evaluated"`
	Roles         []RoleRankResponse `json:"roles"`
}

func FromRoleCandidatesReport(r usecase.RoleCandidatesReport) RoleCandidatesResponse {
	candidates := make([]CandidateRankResponse, 0, len(r.Ranks))
	for _, rank := range r.Ranks {
		candidates = append(candidates, CandidateRankResponse{
			CandidateID:     rank.CandidateID,
			CandidateName:   rank.CandidateName,
			MatchPercentage: match.Round1(rank.MatchPercentage),
			SkillMatches:    rank.SkillMatches,
			SkillGaps:       rank.SkillGaps,
			ExcessSkills:    rank.ExcessSkills,
		})
	}
	return RoleCandidatesResponse{
		RoleID:     r.RoleID,
		RoleTitle:  r.RoleTitle,
		Department: r.Department,
		Evaluated:  r.Evaluated,
		Candidates: candidates,
	}
}

func FromCandidateRolesReport(r usecase.CandidateRolesReport) CandidateRolesResponse {
	roles := make([]RoleRankResponse, 0, len(r.Ranks))
	for _, rank := range r.Ranks {
		roles = append(roles, RoleRankResponse{
			RoleID:                rank.RoleID,
			RoleTitle:             rank.RoleTitle,
			Department:            rank.Department,
			MatchPercentage:       match.Round1(rank.MatchPercentage),
			SkillMatches:          rank.SkillMatches,
			SkillGaps:             rank.SkillGaps,
			RequiredTrainingWeeks: rank.RequiredTrainingWeeks,
		})
	}
	return CandidateRolesResponse{
		CandidateID:   r.CandidateID,
		CandidateName: r.CandidateName,
		Evaluated:     r.Evaluated,
		Roles:         roles,
	}
}
