package match

import (
	"math"
	"time"
)

// Source tells where a recorded proficiency came from.
type Source string

const (
	SourceSelfAssessment Source = "self-assessment"
	SourceManager        Source = "manager"
	SourcePeer           Source = "peer"
	SourceAssessment     Source = "assessment"
	SourceResume         Source = "resume"
)

// ValidSource reports whether s is one of the recognized source values.
func ValidSource(s Source) bool {
	switch s {
	case SourceSelfAssessment, SourceManager, SourcePeer, SourceAssessment, SourceResume:
		return true
	}
	return false
}

// SkillRequirement is one weighted skill a role asks for. Importance is a
// relative weight within the role's requirement set; the set's importances
// do not need to sum to any particular value.
type SkillRequirement struct {
	SkillID            int64
	SkillName          string
	Importance         float64
	MinimumProficiency int
}

// SkillPossession is one skill a candidate holds. A candidate has at most
// one possession per skill id.
type SkillPossession struct {
	SkillID     int64
	SkillName   string
	Proficiency int
	Verified    bool
	Source      Source
}

type SkillMatch struct {
	SkillID              int64
	SkillName            string
	RequiredProficiency  int
	CandidateProficiency int
	Importance           float64
}

// SkillGap is a requirement the candidate does not fully satisfy. Gap is the
// proficiency shortfall; for a skill the candidate lacks entirely,
// CandidateProficiency is 0 and Gap equals the required minimum.
type SkillGap struct {
	SkillID              int64
	SkillName            string
	RequiredProficiency  int
	CandidateProficiency int
	Gap                  int
	Importance           float64
}

type ExcessSkill struct {
	SkillID     int64
	SkillName   string
	Proficiency int
}

type TrainingRecommendation struct {
	SkillID       int64
	SkillName     string
	CurrentLevel  int
	TargetLevel   int
	TrainingType  string
	DurationWeeks int
}

// Result is a single candidate-to-role comparison. OverallPercentage is kept
// at full precision; callers round once, at the presentation boundary.
type Result struct {
	OverallPercentage float64
	Matches           []SkillMatch
	Gaps              []SkillGap
	Excess            []ExcessSkill
}

// HistoryEntry is the append-only record of a completed match computation.
type HistoryEntry struct {
	CandidateID     int64
	RoleID          int64
	MatchPercentage float64
	MatchedAt       time.Time
}

// Round1 rounds a percentage to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
