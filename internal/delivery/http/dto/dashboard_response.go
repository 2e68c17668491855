package dto

import (
	"time"

	"talent-match/internal/domain/match"
	"talent-match/internal/usecase"
)

type SkillCoverageResponse struct {
	SkillID            int64   `json:"skill_id"`
	SkillName          string  `json:"skill_name"`
	HolderCount        int     `json:"holder_count"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

type CriticalGapResponse struct {
	SkillID            int64   `json:"skill_id"`
	SkillName          string  `json:"skill_name"`
	RoleCount          int     `json:"role_count"`
	HolderCount        int     `json:"holder_count"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

type RecentMatchResponse struct {
	CandidateID     int64     `json:"candidate_id"`
	CandidateName   string    `json:"candidate_name"`
	RoleID          int64     `json:"role_id"`
	RoleTitle       string    `json:"role_title"`
	MatchPercentage float64   `json:"match_percentage"`
	MatchedAt       time.Time `json:"matched_at"`
}

type DashboardResponse struct {
	TotalEmployees            int                     `json:"total_employees"`
	DepartmentDistribution    map[string]int          `json:"department_distribution"`
	SkillCategoryDistribution map[string]int          `json:"skill_category_distribution"`
	TopSkills                 []SkillCoverageResponse `json:"top_skills"`
	CriticalSkillGaps         []CriticalGapResponse   `json:"critical_skill_gaps"`
	RecentMatches             []RecentMatchResponse   `json:"recent_matches"`
	GeneratedAt               time.Time               `json:"generated_at"`
}

func FromDashboardReport(r usecase.DashboardReport) DashboardResponse {
	recent := make([]RecentMatchResponse, 0, len(r.RecentMatches))
	for _, m := range r.RecentMatches {
		recent = append(recent, RecentMatchResponse(m))
	}
	return DashboardResponse{
		TotalEmployees:            r.TotalEmployees,
		DepartmentDistribution:    r.DepartmentDistribution,
		SkillCategoryDistribution: r.SkillCategoryDistribution,
		TopSkills:                 FromSkillCoverages(r.TopSkills),
		CriticalSkillGaps:         fromCriticalGaps(r.CriticalSkillGaps),
		RecentMatches:             recent,
		GeneratedAt:               r.GeneratedAt,
	}
}

func FromSkillCoverages(items []match.SkillCoverage) []SkillCoverageResponse {
	out := make([]SkillCoverageResponse, 0, len(items))
	for _, c := range items {
		out = append(out, SkillCoverageResponse{
			SkillID:            c.SkillID,
			SkillName:          c.SkillName,
			HolderCount:        c.HolderCount,
			CoveragePercentage: match.Round1(c.CoveragePercentage),
		})
	}
	return out
}

func fromCriticalGaps(items []match.CriticalGap) []CriticalGapResponse {
	out := make([]CriticalGapResponse, 0, len(items))
	for _, g := range items {
		out = append(out, CriticalGapResponse{
			SkillID:            g.SkillID,
			SkillName:          g.SkillName,
			RoleCount:          g.RoleCount,
			HolderCount:        g.HolderCount,
			CoveragePercentage: match.Round1(g.CoveragePercentage),
		})
	}
	return out
}
