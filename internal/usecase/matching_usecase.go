package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

// MatchNotifier pushes completion events to connected clients. Implementations
// must not block the caller.
type MatchNotifier interface {
	NotifyMatchCompleted(candidateID, roleID int64, matchPercentage float64)
}

type NopNotifier struct{}

func (NopNotifier) NotifyMatchCompleted(int64, int64, float64) {}

// MatchReport is a scored candidate-to-role comparison plus the training
// plan that would close its gaps.
type MatchReport struct {
	CandidateID   int64
	CandidateName string
	RoleID        int64
	RoleTitle     string
	Department    string

	Result          match.Result
	Recommendations []match.TrainingRecommendation
}

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, candidateID, roleID int64) (MatchReport, error)
}

type Matching struct {
	users      repository.UserRepository
	userSkills repository.UserSkillRepository
	roles      repository.RoleRepository

	recorder MatchHistoryRecorder
	notifier MatchNotifier
}

func NewMatchingUsecase(
	users repository.UserRepository,
	userSkills repository.UserSkillRepository,
	roles repository.RoleRepository,
	recorder MatchHistoryRecorder,
	notifier MatchNotifier,
) *Matching {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Matching{users: users, userSkills: userSkills, roles: roles, recorder: recorder, notifier: notifier}
}

func (u *Matching) CalculateMatch(ctx context.Context, candidateID, roleID int64) (MatchReport, error) {
	candidate, err := u.users.FindByID(ctx, candidateID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return MatchReport{}, ErrCandidateNotFound
		}
		return MatchReport{}, ErrInternal
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if err == repository.ErrRoleNotFound {
			return MatchReport{}, ErrRoleNotFound
		}
		return MatchReport{}, ErrInternal
	}

	possessions, err := u.userSkills.FindByUserID(ctx, candidateID)
	if err != nil {
		return MatchReport{}, ErrInternal
	}
	if len(possessions) == 0 {
		return MatchReport{}, ErrNoSkillsRecorded
	}

	reqs, err := u.roles.RequirementsByRoleID(ctx, roleID)
	if err != nil {
		return MatchReport{}, ErrInternal
	}

	result := match.Score(toRequirements(reqs), toPossessions(possessions))

	report := MatchReport{
		CandidateID:     candidate.ID,
		CandidateName:   candidate.FullName,
		RoleID:          role.ID,
		RoleTitle:       role.Title,
		Department:      role.Department,
		Result:          result,
		Recommendations: match.Recommend(result.Gaps),
	}

	u.recorder.Record(match.HistoryEntry{
		CandidateID:     candidate.ID,
		RoleID:          role.ID,
		MatchPercentage: result.OverallPercentage,
		MatchedAt:       time.Now().UTC(),
	})
	u.notifier.NotifyMatchCompleted(candidate.ID, role.ID, result.OverallPercentage)

	return report, nil
}

func toRequirements(reqs []repository.RoleRequirement) []match.SkillRequirement {
	out := make([]match.SkillRequirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, match.SkillRequirement{
			SkillID:            r.SkillID,
			SkillName:          r.SkillName,
			Importance:         r.Importance,
			MinimumProficiency: r.MinimumProficiency,
		})
	}
	return out
}

func toPossessions(items []repository.Possession) []match.SkillPossession {
	out := make([]match.SkillPossession, 0, len(items))
	for _, p := range items {
		out = append(out, match.SkillPossession{
			SkillID:     p.SkillID,
			SkillName:   p.SkillName,
			Proficiency: p.Proficiency,
			Verified:    p.Verified,
			Source:      match.Source(p.Source),
		})
	}
	return out
}
