package match

const (
	TrainingTypeCourse   = "Course"
	TrainingTypeOnTheJob = "On-the-job training"

	// weeksPerLevel estimates two weeks of training per proficiency level
	// of shortfall, whether the skill is merely below threshold or missing
	// entirely.
	weeksPerLevel = 2

	// courseGapThreshold: shortfalls deeper than this warrant a structured
	// course instead of on-the-job training.
	courseGapThreshold = 2
)

// Recommend derives one training recommendation per gap.
func Recommend(gaps []SkillGap) []TrainingRecommendation {
	recs := make([]TrainingRecommendation, 0, len(gaps))
	for _, g := range gaps {
		trainingType := TrainingTypeOnTheJob
		if g.Gap > courseGapThreshold {
			trainingType = TrainingTypeCourse
		}
		recs = append(recs, TrainingRecommendation{
			SkillID:       g.SkillID,
			SkillName:     g.SkillName,
			CurrentLevel:  g.CandidateProficiency,
			TargetLevel:   g.RequiredProficiency,
			TrainingType:  trainingType,
			DurationWeeks: g.Gap * weeksPerLevel,
		})
	}
	return recs
}

// TotalTrainingWeeks sums the estimated duration across all gaps.
func TotalTrainingWeeks(gaps []SkillGap) int {
	total := 0
	for _, g := range gaps {
		total += g.Gap * weeksPerLevel
	}
	return total
}
