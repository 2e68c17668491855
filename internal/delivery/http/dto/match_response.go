package dto

import (
	"talent-match/internal/domain/match"
	"talent-match/internal/usecase"
)

type SkillMatchResponse struct {
	SkillID              int64   `json:"skill_id"`
	SkillName            string  `json:"skill_name"`
	RequiredProficiency  int     `json:"required_proficiency"`
	CandidateProficiency int     `json:"candidate_proficiency"`
	Importance           float64 `json:"importance"`
}

type SkillGapResponse struct {
	SkillID              int64   `json:"skill_id"`
	SkillName            string  `json:"skill_name"`
	RequiredProficiency  int     `json:"required_proficiency"`
	CandidateProficiency int     `json:"candidate_proficiency"`
	Gap                  int     `json:"gap"`
	Importance           float64 `json:"importance"`
}

type ExcessSkillResponse struct {
	SkillID     int64  `json:"skill_id"`
	SkillName   string `json:"skill_name"`
	Proficiency int    `json:"proficiency"`
}

type TrainingRecommendationResponse struct {
	SkillID       int64  `json:"skill_id"`
	SkillName     string `json:"skill_name"`
	CurrentLevel  int    `json:"current_level"`
	TargetLevel   int    `json:"target_level"`
	TrainingType  string `json:"training_type"`
	DurationWeeks int    `json:"duration_weeks"`
}

type MatchReportResponse struct {
	CandidateID     int64                            `json:"candidate_id"`
	CandidateName   string                           `json:"candidate_name"`
	RoleID          int64                            `json:"role_id"`
	RoleTitle       string                           `json:"role_title"`
	Department      string                           `json:"department"`
	MatchPercentage float64                          `json:"match_percentage"`
	SkillMatches    []SkillMatchResponse             `json:"skill_matches"`
	SkillGaps       []SkillGapResponse               `json:"skill_gaps"`
	ExcessSkills    []ExcessSkillResponse            `json:"excess_skills"`
	Recommendations []TrainingRecommendationResponse `json:"training_recommendations"`
}

func FromMatchReport(r usecase.MatchReport) MatchReportResponse {
	return MatchReportResponse{
		CandidateID:     r.CandidateID,
		CandidateName:   r.CandidateName,
		RoleID:          r.RoleID,
		RoleTitle:       r.RoleTitle,
		Department:      r.Department,
		MatchPercentage: match.Round1(r.Result.OverallPercentage),
		SkillMatches:    fromSkillMatches(r.Result.Matches),
		SkillGaps:       fromSkillGaps(r.Result.Gaps),
		ExcessSkills:    fromExcessSkills(r.Result.Excess),
		Recommendations: fromRecommendations(r.Recommendations),
	}
}

func fromSkillMatches(items []match.SkillMatch) []SkillMatchResponse {
	out := make([]SkillMatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, SkillMatchResponse{
			SkillID:              m.SkillID,
			SkillName:            m.SkillName,
			RequiredProficiency:  m.RequiredProficiency,
			CandidateProficiency: m.CandidateProficiency,
			Importance:           m.Importance,
		})
	}
	return out
}

func fromSkillGaps(items []match.SkillGap) []SkillGapResponse {
	out := make([]SkillGapResponse, 0, len(items))
	for _, g := range items {
		out = append(out, SkillGapResponse{
			SkillID:              g.SkillID,
			SkillName:            g.SkillName,
			RequiredProficiency:  g.RequiredProficiency,
			CandidateProficiency: g.CandidateProficiency,
			Gap:                  g.Gap,
			Importance:           g.Importance,
		})
	}
	return out
}

func fromExcessSkills(items []match.ExcessSkill) []ExcessSkillResponse {
	out := make([]ExcessSkillResponse, 0, len(items))
	for _, e := range items {
		out = append(out, ExcessSkillResponse{
			SkillID:     e.SkillID,
			SkillName:   e.SkillName,
			Proficiency: e.Proficiency,
		})
	}
	return out
}

func fromRecommendations(items []match.TrainingRecommendation) []TrainingRecommendationResponse {
	out := make([]TrainingRecommendationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, TrainingRecommendationResponse{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			CurrentLevel:  r.CurrentLevel,
			TargetLevel:   r.TargetLevel,
			TrainingType:  r.TrainingType,
			DurationWeeks: r.DurationWeeks,
		})
	}
	return out
}
