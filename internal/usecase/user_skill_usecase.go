package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

// SkillInput is one skill declaration from the profile API. An existing
// possession for the same skill is replaced, not duplicated.
type SkillInput struct {
	SkillID     int64
	Proficiency int
	Verified    bool
	Source      string
}

type UserSkillUsecase interface {
	ListByUser(ctx context.Context, userID int64) ([]repository.Possession, error)
	Upsert(ctx context.Context, userID int64, input SkillInput) (repository.Possession, error)
	Delete(ctx context.Context, userID, skillID int64) error
}

type UserSkill struct {
	users      repository.UserRepository
	skills     repository.SkillRepository
	userSkills repository.UserSkillRepository

	invalidator DashboardInvalidator
}

// DashboardInvalidator drops cached analytics after profile writes. A nil
// invalidator is a no-op.
type DashboardInvalidator interface {
	InvalidateDashboard(ctx context.Context) error
}

func NewUserSkillUsecase(
	users repository.UserRepository,
	skills repository.SkillRepository,
	userSkills repository.UserSkillRepository,
	invalidator DashboardInvalidator,
) *UserSkill {
	return &UserSkill{users: users, skills: skills, userSkills: userSkills, invalidator: invalidator}
}

func (u *UserSkill) ListByUser(ctx context.Context, userID int64) ([]repository.Possession, error) {
	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrCandidateNotFound
	}

	items, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *UserSkill) Upsert(ctx context.Context, userID int64, input SkillInput) (repository.Possession, error) {
	if input.Proficiency < 1 || input.Proficiency > 5 {
		return repository.Possession{}, ErrInvalidProficiency
	}
	source := input.Source
	if source == "" {
		source = string(match.SourceSelfAssessment)
	}
	if !match.ValidSource(match.Source(source)) {
		return repository.Possession{}, ErrInvalidSource
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return repository.Possession{}, ErrInternal
	}
	if !exists {
		return repository.Possession{}, ErrCandidateNotFound
	}

	skillExists, err := u.skills.ExistsByID(ctx, input.SkillID)
	if err != nil {
		return repository.Possession{}, ErrInternal
	}
	if !skillExists {
		return repository.Possession{}, ErrSkillNotFound
	}

	possession := repository.Possession{
		UserID:      userID,
		SkillID:     input.SkillID,
		Proficiency: input.Proficiency,
		Verified:    input.Verified,
		Source:      source,
	}
	if input.Verified {
		now := time.Now().UTC()
		possession.LastVerified = &now
	}

	saved, err := u.userSkills.Upsert(ctx, possession)
	if err != nil {
		return repository.Possession{}, ErrInternal
	}

	u.invalidate(ctx)
	return saved, nil
}

func (u *UserSkill) Delete(ctx context.Context, userID, skillID int64) error {
	err := u.userSkills.Delete(ctx, userID, skillID)
	if err != nil {
		if err == repository.ErrUserSkillNotFound {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx)
	return nil
}

func (u *UserSkill) invalidate(ctx context.Context) {
	if u.invalidator == nil {
		return
	}
	_ = u.invalidator.InvalidateDashboard(ctx)
}
