package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/repository"
)

func userSkillFixture() (*fakeUserRepo, *fakeSkillRepo, *fakeUserSkillRepo) {
	users := &fakeUserRepo{users: map[int64]repository.User{
		1: {ID: 1, FullName: "Ana Santos"},
	}}
	skills := &fakeSkillRepo{skills: map[int64]repository.Skill{
		10: {ID: 10, Name: "Go"},
	}}
	userSkills := &fakeUserSkillRepo{byUser: map[int64][]repository.Possession{}}
	return users, skills, userSkills
}

func TestUpsertSkill(t *testing.T) {
	users, skills, userSkills := userSkillFixture()
	uc := NewUserSkillUsecase(users, skills, userSkills, nil)

	saved, err := uc.Upsert(context.Background(), 1, SkillInput{SkillID: 10, Proficiency: 3})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if saved.Source != "self-assessment" {
		t.Fatalf("source = %q, want default self-assessment", saved.Source)
	}

	// Same skill again replaces, never duplicates.
	saved, err = uc.Upsert(context.Background(), 1, SkillInput{SkillID: 10, Proficiency: 5, Source: "manager"})
	if err != nil {
		t.Fatalf("Upsert second: %v", err)
	}
	if saved.Proficiency != 5 || saved.Source != "manager" {
		t.Fatalf("unexpected possession: %+v", saved)
	}

	items, err := uc.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("possessions = %d, want 1", len(items))
	}
}

func TestUpsertSkill_Validation(t *testing.T) {
	users, skills, userSkills := userSkillFixture()
	uc := NewUserSkillUsecase(users, skills, userSkills, nil)

	cases := []struct {
		name  string
		input SkillInput
		want  error
	}{
		{"proficiency too low", SkillInput{SkillID: 10, Proficiency: 0}, ErrInvalidProficiency},
		{"proficiency too high", SkillInput{SkillID: 10, Proficiency: 6}, ErrInvalidProficiency},
		{"unknown source", SkillInput{SkillID: 10, Proficiency: 3, Source: "rumor"}, ErrInvalidSource},
		{"unknown skill", SkillInput{SkillID: 999, Proficiency: 3}, ErrSkillNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Upsert(context.Background(), 1, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := uc.Upsert(context.Background(), 999, SkillInput{SkillID: 10, Proficiency: 3}); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("err = %v, want ErrCandidateNotFound", err)
	}
}

func TestDeleteSkill(t *testing.T) {
	users, skills, userSkills := userSkillFixture()
	uc := NewUserSkillUsecase(users, skills, userSkills, nil)

	if _, err := uc.Upsert(context.Background(), 1, SkillInput{SkillID: 10, Proficiency: 3}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := uc.Delete(context.Background(), 1, 10); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(context.Background(), 1, 10); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("second delete err = %v, want ErrSkillNotFound", err)
	}
}
