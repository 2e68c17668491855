package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/repository"
)

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func matchingFixture() (*fakeUserRepo, *fakeUserSkillRepo, *fakeRoleRepo) {
	users := &fakeUserRepo{users: map[int64]repository.User{
		1: {ID: 1, FullName: "Ana Santos", Email: "a.santos@example.com"},
	}}
	userSkills := &fakeUserSkillRepo{byUser: map[int64][]repository.Possession{
		1: {
			{UserID: 1, SkillID: 10, SkillName: "Go", Proficiency: 4, Source: "manager"},
			{UserID: 1, SkillID: 20, SkillName: "SQL", Proficiency: 2, Source: "self-assessment"},
		},
	}}
	roles := &fakeRoleRepo{
		roles: map[int64]repository.JobRole{
			7: {ID: 7, Title: "Backend Engineer", Department: "Engineering"},
		},
		reqs: map[int64][]repository.RoleRequirement{
			7: {
				{RoleID: 7, SkillID: 10, SkillName: "Go", Importance: 5, MinimumProficiency: 3},
				{RoleID: 7, SkillID: 20, SkillName: "SQL", Importance: 4, MinimumProficiency: 4},
				{RoleID: 7, SkillID: 30, SkillName: "Docker", Importance: 1, MinimumProficiency: 2},
			},
		},
	}
	return users, userSkills, roles
}

func TestCalculateMatch(t *testing.T) {
	users, userSkills, roles := matchingFixture()
	recorder := &capturingRecorder{}
	notifier := &capturingNotifier{}
	uc := NewMatchingUsecase(users, userSkills, roles, recorder, notifier)

	report, err := uc.CalculateMatch(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("CalculateMatch: %v", err)
	}

	if report.RoleTitle != "Backend Engineer" || report.CandidateName != "Ana Santos" {
		t.Fatalf("unexpected report header: %+v", report)
	}

	// Go fully met (5), SQL partial (4 * 2/4 = 2), Docker missing: 7/10.
	want := 70.0
	if got := report.Result.OverallPercentage; !closeTo(got, want) {
		t.Fatalf("percentage = %v, want %v", got, want)
	}
	if len(report.Result.Matches) != 1 || len(report.Result.Gaps) != 2 {
		t.Fatalf("matches=%d gaps=%d, want 1 and 2", len(report.Result.Matches), len(report.Result.Gaps))
	}
	if len(report.Recommendations) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(report.Recommendations))
	}

	entries := recorder.recorded()
	if len(entries) != 1 {
		t.Fatalf("recorded entries = %d, want 1", len(entries))
	}
	if entries[0].CandidateID != 1 || entries[0].RoleID != 7 || !closeTo(entries[0].MatchPercentage, want) {
		t.Fatalf("unexpected history entry: %+v", entries[0])
	}
	if len(notifier.events) != 1 {
		t.Fatalf("notifier events = %d, want 1", len(notifier.events))
	}
}

func TestCalculateMatch_RoleNotFound(t *testing.T) {
	users, userSkills, roles := matchingFixture()
	uc := NewMatchingUsecase(users, userSkills, roles, nil, nil)

	_, err := uc.CalculateMatch(context.Background(), 1, 999)
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("err = %v, want ErrRoleNotFound", err)
	}
}

func TestCalculateMatch_CandidateNotFound(t *testing.T) {
	users, userSkills, roles := matchingFixture()
	uc := NewMatchingUsecase(users, userSkills, roles, nil, nil)

	_, err := uc.CalculateMatch(context.Background(), 999, 7)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("err = %v, want ErrCandidateNotFound", err)
	}
}

func TestCalculateMatch_NoSkillsRecorded(t *testing.T) {
	users, userSkills, roles := matchingFixture()
	users.users[2] = repository.User{ID: 2, FullName: "New Hire"}
	recorder := &capturingRecorder{}
	uc := NewMatchingUsecase(users, userSkills, roles, recorder, nil)

	_, err := uc.CalculateMatch(context.Background(), 2, 7)
	if !errors.Is(err, ErrNoSkillsRecorded) {
		t.Fatalf("err = %v, want ErrNoSkillsRecorded", err)
	}
	if len(recorder.recorded()) != 0 {
		t.Fatalf("failed match must not be recorded")
	}
}

func TestCalculateMatch_RepoFailure(t *testing.T) {
	users, userSkills, roles := matchingFixture()
	userSkills.err = errors.New("connection refused")
	uc := NewMatchingUsecase(users, userSkills, roles, nil, nil)

	_, err := uc.CalculateMatch(context.Background(), 1, 7)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
