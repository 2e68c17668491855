package usecase

import (
	"context"
	"testing"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/repository"
)

func organizationFixture() *Organization {
	users := &fakeUserRepo{
		users: map[int64]repository.User{
			1: {ID: 1, FullName: "Ana Santos", Department: "Engineering"},
			2: {ID: 2, FullName: "Budi Wirjo", Department: "Engineering"},
			3: {ID: 3, FullName: "Clara Novak", Department: "Data"},
		},
		byDept: map[string]int{"Engineering": 2, "Data": 1},
	}
	skills := &fakeSkillRepo{byCategory: map[string]int{"Programming Language": 2}}
	userSkills := &fakeUserSkillRepo{
		population: []repository.PopulationMember{
			{UserID: 1, FullName: "Ana Santos", Possessions: []repository.Possession{
				{UserID: 1, SkillID: 10, SkillName: "Go", Proficiency: 4},
				{UserID: 1, SkillID: 20, SkillName: "SQL", Proficiency: 3},
			}},
			{UserID: 2, FullName: "Budi Wirjo", Possessions: []repository.Possession{
				{UserID: 2, SkillID: 10, SkillName: "Go", Proficiency: 2},
			}},
			{UserID: 3, FullName: "Clara Novak"},
		},
	}
	roles := &fakeRoleRepo{
		roles: map[int64]repository.JobRole{
			7: {ID: 7, Title: "Platform Engineer", Department: "Engineering"},
		},
		reqs: map[int64][]repository.RoleRequirement{
			7: {
				{RoleID: 7, SkillID: 10, SkillName: "Go", Importance: 3, MinimumProficiency: 3},
				{RoleID: 7, SkillID: 40, SkillName: "Kubernetes", Importance: 5, MinimumProficiency: 3},
			},
		},
	}
	history := &fakeHistoryRepo{recent: []repository.MatchHistoryActivity{
		{CandidateID: 1, CandidateName: "Ana Santos", RoleID: 7, RoleTitle: "Platform Engineer", MatchPercentage: 37.5, MatchedAt: time.Now()},
	}}

	cfg := config.MatchingConfig{CriticalGapCoverage: 20, TopSkillsLimit: 10}
	return NewOrganizationUsecase(users, skills, userSkills, roles, history, nil, discardLogger(), cfg)
}

func TestDashboard(t *testing.T) {
	uc := organizationFixture()

	report, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if report.TotalEmployees != 3 {
		t.Fatalf("total employees = %d, want 3", report.TotalEmployees)
	}
	if report.DepartmentDistribution["Engineering"] != 2 {
		t.Fatalf("department distribution: %+v", report.DepartmentDistribution)
	}

	// Go held by 2 of 3, SQL by 1 of 3.
	if len(report.TopSkills) != 2 || report.TopSkills[0].SkillName != "Go" {
		t.Fatalf("top skills: %+v", report.TopSkills)
	}
	if report.TopSkills[0].HolderCount != 2 {
		t.Fatalf("Go holders = %d, want 2", report.TopSkills[0].HolderCount)
	}

	// Kubernetes is demanded but held by nobody: 0% < 20% threshold.
	if len(report.CriticalSkillGaps) != 1 || report.CriticalSkillGaps[0].SkillName != "Kubernetes" {
		t.Fatalf("critical gaps: %+v", report.CriticalSkillGaps)
	}

	if len(report.RecentMatches) != 1 || report.RecentMatches[0].CandidateName != "Ana Santos" {
		t.Fatalf("recent matches: %+v", report.RecentMatches)
	}
}

func TestDashboard_UsesCache(t *testing.T) {
	uc := organizationFixture()
	cache := &fakeCache{}
	uc.cache = cache

	first, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("first Dashboard: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("second Dashboard: %v", err)
	}
	if cache.getHits != 1 {
		t.Fatalf("cache hits = %d, want 1", cache.getHits)
	}
	if second.TotalEmployees != first.TotalEmployees {
		t.Fatalf("cached report differs: %d vs %d", second.TotalEmployees, first.TotalEmployees)
	}
}

func TestDashboard_HistoryFailureTolerated(t *testing.T) {
	uc := organizationFixture()
	uc.history = &fakeHistoryRepo{err: errTest}

	report, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(report.RecentMatches) != 0 {
		t.Fatalf("recent matches = %d, want 0", len(report.RecentMatches))
	}
}

func TestSkillCoverage(t *testing.T) {
	uc := organizationFixture()

	coverage, err := uc.SkillCoverage(context.Background())
	if err != nil {
		t.Fatalf("SkillCoverage: %v", err)
	}
	if len(coverage) != 2 {
		t.Fatalf("coverage entries = %d, want 2", len(coverage))
	}
	// Sorted by skill id: Go (10) then SQL (20).
	if coverage[0].SkillID != 10 || coverage[1].SkillID != 20 {
		t.Fatalf("coverage order: %+v", coverage)
	}
}
