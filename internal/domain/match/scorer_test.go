package match

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_FullAndMissing(t *testing.T) {
	reqs := []SkillRequirement{
		{SkillID: 1, SkillName: "Go", Importance: 0.9, MinimumProficiency: 4},
		{SkillID: 2, SkillName: "SQL", Importance: 0.6, MinimumProficiency: 3},
	}
	poss := []SkillPossession{
		{SkillID: 1, SkillName: "Go", Proficiency: 4, Source: SourceAssessment},
	}

	res := Score(reqs, poss)

	if !almostEqual(res.OverallPercentage, 60.0) {
		t.Fatalf("expected 60.0, got %v", res.OverallPercentage)
	}
	if len(res.Matches) != 1 || res.Matches[0].SkillID != 1 {
		t.Fatalf("expected full match on skill 1, got %+v", res.Matches)
	}
	if len(res.Gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(res.Gaps))
	}
	if res.Gaps[0].SkillID != 2 || res.Gaps[0].Gap != 3 || res.Gaps[0].CandidateProficiency != 0 {
		t.Fatalf("unexpected gap: %+v", res.Gaps[0])
	}
	if len(res.Excess) != 0 {
		t.Fatalf("expected no excess, got %+v", res.Excess)
	}
}

func TestScore_PartialCredit(t *testing.T) {
	reqs := []SkillRequirement{
		{SkillID: 1, SkillName: "Go", Importance: 0.9, MinimumProficiency: 4},
		{SkillID: 2, SkillName: "SQL", Importance: 0.6, MinimumProficiency: 3},
	}
	poss := []SkillPossession{
		{SkillID: 1, SkillName: "Go", Proficiency: 2},
	}

	res := Score(reqs, poss)

	// 0.9 * (2/4) = 0.45 credited out of 1.5 total importance.
	if !almostEqual(res.OverallPercentage, 30.0) {
		t.Fatalf("expected 30.0, got %v", res.OverallPercentage)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected no full matches, got %+v", res.Matches)
	}
	if len(res.Gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(res.Gaps))
	}
	if res.Gaps[0].SkillID != 1 || res.Gaps[0].Gap != 2 {
		t.Fatalf("unexpected gap for skill 1: %+v", res.Gaps[0])
	}
}

func TestScore_EmptyRequirements(t *testing.T) {
	res := Score(nil, []SkillPossession{{SkillID: 7, SkillName: "Rust", Proficiency: 5}})

	if res.OverallPercentage != 0 {
		t.Fatalf("role with no requirements must score 0, got %v", res.OverallPercentage)
	}
	if len(res.Matches) != 0 || len(res.Gaps) != 0 {
		t.Fatalf("expected empty matches and gaps, got %d/%d", len(res.Matches), len(res.Gaps))
	}
	if len(res.Excess) != 1 || res.Excess[0].SkillID != 7 {
		t.Fatalf("expected possession reported as excess, got %+v", res.Excess)
	}
}

func TestScore_EmptyPossessions(t *testing.T) {
	reqs := []SkillRequirement{
		{SkillID: 1, Importance: 0.5, MinimumProficiency: 3},
		{SkillID: 2, Importance: 0.5, MinimumProficiency: 4},
	}

	res := Score(reqs, nil)

	if res.OverallPercentage != 0 {
		t.Fatalf("expected 0, got %v", res.OverallPercentage)
	}
	if len(res.Gaps) != 2 {
		t.Fatalf("expected all requirements gapped, got %d", len(res.Gaps))
	}
	for i, g := range res.Gaps {
		if g.Gap != reqs[i].MinimumProficiency || g.CandidateProficiency != 0 {
			t.Fatalf("gap %d: expected full gap size, got %+v", i, g)
		}
	}
}

func TestScore_Partition(t *testing.T) {
	reqs := []SkillRequirement{
		{SkillID: 1, Importance: 1.0, MinimumProficiency: 5},
		{SkillID: 2, Importance: 0.2, MinimumProficiency: 2},
		{SkillID: 3, Importance: 0.7, MinimumProficiency: 3},
		{SkillID: 4, Importance: 0.4, MinimumProficiency: 1},
	}
	poss := []SkillPossession{
		{SkillID: 2, Proficiency: 3},
		{SkillID: 3, Proficiency: 1},
		{SkillID: 9, Proficiency: 5},
	}

	res := Score(reqs, poss)

	if len(res.Matches)+len(res.Gaps) != len(reqs) {
		t.Fatalf("every requirement resolves to exactly one of matched or gapped: %d+%d != %d",
			len(res.Matches), len(res.Gaps), len(reqs))
	}
	if res.OverallPercentage < 0 || res.OverallPercentage > 100 {
		t.Fatalf("percentage out of range: %v", res.OverallPercentage)
	}
	if len(res.Excess) != 1 || res.Excess[0].SkillID != 9 {
		t.Fatalf("excess must contain exactly the unrequired possessions, got %+v", res.Excess)
	}
}

func TestScore_OrderingFollowsInput(t *testing.T) {
	reqs := []SkillRequirement{
		{SkillID: 30, Importance: 0.5, MinimumProficiency: 3},
		{SkillID: 10, Importance: 0.5, MinimumProficiency: 3},
		{SkillID: 20, Importance: 0.5, MinimumProficiency: 3},
	}
	poss := []SkillPossession{
		{SkillID: 10, Proficiency: 5},
		{SkillID: 30, Proficiency: 1},
	}

	res := Score(reqs, poss)

	if len(res.Gaps) != 2 || res.Gaps[0].SkillID != 30 || res.Gaps[1].SkillID != 20 {
		t.Fatalf("gaps must preserve requirement order, got %+v", res.Gaps)
	}
	if len(res.Matches) != 1 || res.Matches[0].SkillID != 10 {
		t.Fatalf("unexpected matches: %+v", res.Matches)
	}
}

func TestScore_Idempotent(t *testing.T) {
	reqs := []SkillRequirement{
		{SkillID: 1, SkillName: "Go", Importance: 0.9, MinimumProficiency: 4},
		{SkillID: 2, SkillName: "SQL", Importance: 0.6, MinimumProficiency: 3},
	}
	poss := []SkillPossession{
		{SkillID: 1, SkillName: "Go", Proficiency: 2},
		{SkillID: 5, SkillName: "Kafka", Proficiency: 4},
	}

	first := Score(reqs, poss)
	second := Score(reqs, poss)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{59.99, 60.0},
		{33.333333, 33.3},
		{66.666666, 66.7},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); !almostEqual(got, tt.want) {
			t.Fatalf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
