package match

import "testing"

func populationOf4() []Candidate {
	return []Candidate{
		{ID: 1, Possessions: []SkillPossession{
			{SkillID: 10, SkillName: "Go", Proficiency: 4},
			{SkillID: 20, SkillName: "SQL", Proficiency: 3},
		}},
		{ID: 2, Possessions: []SkillPossession{
			{SkillID: 20, SkillName: "SQL", Proficiency: 2},
		}},
		{ID: 3, Possessions: []SkillPossession{
			{SkillID: 20, SkillName: "SQL", Proficiency: 5},
			{SkillID: 30, SkillName: "Kubernetes", Proficiency: 1},
		}},
		{ID: 4, Possessions: nil},
	}
}

func TestCoverage(t *testing.T) {
	out := Coverage(populationOf4())

	byID := make(map[int64]SkillCoverage, len(out))
	for _, c := range out {
		byID[c.SkillID] = c
	}

	if c := byID[10]; c.HolderCount != 1 || !almostEqual(c.CoveragePercentage, 25.0) {
		t.Fatalf("skill 10: expected 1 holder / 25%%, got %+v", c)
	}
	if c := byID[20]; c.HolderCount != 3 || !almostEqual(c.CoveragePercentage, 75.0) {
		t.Fatalf("skill 20: expected 3 holders / 75%%, got %+v", c)
	}
	for _, c := range out {
		if c.CoveragePercentage < 0 || c.CoveragePercentage > 100 {
			t.Fatalf("coverage out of range: %+v", c)
		}
	}
}

func TestCoverage_EmptyPopulation(t *testing.T) {
	if out := Coverage(nil); len(out) != 0 {
		t.Fatalf("expected empty coverage, got %+v", out)
	}
	if pct := coveragePct(3, 0); pct != 0 {
		t.Fatalf("zero population must yield 0%%, got %v", pct)
	}
}

func TestTopSkills(t *testing.T) {
	out := TopSkills(populationOf4(), CoverageConfig{TopSkillsLimit: 2})

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].SkillID != 20 || out[0].HolderCount != 3 {
		t.Fatalf("expected SQL on top, got %+v", out[0])
	}
	// Skills 10 and 30 tie with one holder each; the lower id wins.
	if out[1].SkillID != 10 {
		t.Fatalf("expected tie broken by ascending skill id, got %+v", out[1])
	}
}

func TestCriticalGaps(t *testing.T) {
	roles := []Role{
		{ID: 1, Requirements: []SkillRequirement{
			{SkillID: 30, SkillName: "Kubernetes", Importance: 1, MinimumProficiency: 3},
			{SkillID: 40, SkillName: "Terraform", Importance: 1, MinimumProficiency: 3},
		}},
		{ID: 2, Requirements: []SkillRequirement{
			{SkillID: 30, SkillName: "Kubernetes", Importance: 1, MinimumProficiency: 4},
			{SkillID: 20, SkillName: "SQL", Importance: 1, MinimumProficiency: 3},
		}},
		{ID: 3, Requirements: []SkillRequirement{
			{SkillID: 40, SkillName: "Terraform", Importance: 1, MinimumProficiency: 2},
		}},
	}

	// Coverage: Kubernetes 25%, Terraform 0%, SQL 75%.
	out := CriticalGaps(populationOf4(), roles, CoverageConfig{CriticalGapCoverage: 30, TopSkillsLimit: 10})

	if len(out) != 2 {
		t.Fatalf("expected 2 critical gaps, got %+v", out)
	}
	// Both demanded by 2 roles; Terraform's lower coverage wins the tie.
	if out[0].SkillID != 40 || out[1].SkillID != 30 {
		t.Fatalf("expected order [Terraform Kubernetes], got [%d %d]", out[0].SkillID, out[1].SkillID)
	}
	if out[0].RoleCount != 2 || out[1].RoleCount != 2 {
		t.Fatalf("unexpected role counts: %+v", out)
	}
}

func TestCriticalGaps_WellCoveredSkillExcluded(t *testing.T) {
	roles := []Role{
		{ID: 1, Requirements: []SkillRequirement{
			{SkillID: 20, SkillName: "SQL", Importance: 1, MinimumProficiency: 3},
		}},
	}

	out := CriticalGaps(populationOf4(), roles, DefaultCoverageConfig())
	if len(out) != 0 {
		t.Fatalf("75%% coverage is not a critical gap, got %+v", out)
	}
}

func TestCriticalGaps_EmptyPopulation(t *testing.T) {
	roles := []Role{
		{ID: 1, Requirements: []SkillRequirement{
			{SkillID: 1, SkillName: "Go", Importance: 1, MinimumProficiency: 3},
		}},
	}

	out := CriticalGaps(nil, roles, DefaultCoverageConfig())
	if len(out) != 1 {
		t.Fatalf("expected the demanded skill to be a gap, got %+v", out)
	}
	if out[0].CoveragePercentage != 0 || out[0].HolderCount != 0 {
		t.Fatalf("expected guarded zero coverage, got %+v", out[0])
	}
}
