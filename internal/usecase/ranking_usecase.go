package usecase

import (
	"context"

	"talent-match/internal/config"
	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

// RoleCandidatesReport lists the best candidates for one role.
type RoleCandidatesReport struct {
	RoleID     int64
	RoleTitle  string
	Department string
	Evaluated  int
	Ranks      []match.CandidateRank
}

// CandidateRolesReport lists the best role fits for one candidate.
type CandidateRolesReport struct {
	CandidateID   int64
	CandidateName string
	Evaluated     int
	Ranks         []match.RoleRank
}

// RankOptions are per-request overrides. Zero values fall back to the
// configured defaults.
type RankOptions struct {
	MinMatchPercentage float64
	Limit              int
	Department         string
}

type RankingUsecase interface {
	RankCandidatesForRole(ctx context.Context, roleID int64, opts RankOptions) (RoleCandidatesReport, error)
	RankRolesForCandidate(ctx context.Context, candidateID int64, opts RankOptions) (CandidateRolesReport, error)
}

type Ranking struct {
	users      repository.UserRepository
	userSkills repository.UserSkillRepository
	roles      repository.RoleRepository

	cfg match.RankConfig
}

func NewRankingUsecase(
	users repository.UserRepository,
	userSkills repository.UserSkillRepository,
	roles repository.RoleRepository,
	matching config.MatchingConfig,
) *Ranking {
	return &Ranking{
		users:      users,
		userSkills: userSkills,
		roles:      roles,
		cfg: match.RankConfig{
			MinMatchPercentage: matching.MinMatchPercentage,
			Limit:              matching.RankLimit,
			Workers:            matching.RankWorkers,
		},
	}
}

func (u *Ranking) rankConfig(opts RankOptions) match.RankConfig {
	cfg := u.cfg
	if opts.MinMatchPercentage > 0 {
		cfg.MinMatchPercentage = opts.MinMatchPercentage
	}
	if opts.Limit > 0 {
		cfg.Limit = opts.Limit
	}
	return cfg
}

func (u *Ranking) RankCandidatesForRole(ctx context.Context, roleID int64, opts RankOptions) (RoleCandidatesReport, error) {
	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if err == repository.ErrRoleNotFound {
			return RoleCandidatesReport{}, ErrRoleNotFound
		}
		return RoleCandidatesReport{}, ErrInternal
	}

	reqs, err := u.roles.RequirementsByRoleID(ctx, roleID)
	if err != nil {
		return RoleCandidatesReport{}, ErrInternal
	}

	members, err := u.userSkills.Population(ctx)
	if err != nil {
		return RoleCandidatesReport{}, ErrInternal
	}

	ranks, err := match.RankCandidates(ctx, toRequirements(reqs), toCandidates(members), u.rankConfig(opts))
	if err != nil {
		return RoleCandidatesReport{}, err
	}

	return RoleCandidatesReport{
		RoleID:     role.ID,
		RoleTitle:  role.Title,
		Department: role.Department,
		Evaluated:  len(members),
		Ranks:      ranks,
	}, nil
}

func (u *Ranking) RankRolesForCandidate(ctx context.Context, candidateID int64, opts RankOptions) (CandidateRolesReport, error) {
	candidate, err := u.users.FindByID(ctx, candidateID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return CandidateRolesReport{}, ErrCandidateNotFound
		}
		return CandidateRolesReport{}, ErrInternal
	}

	possessions, err := u.userSkills.FindByUserID(ctx, candidateID)
	if err != nil {
		return CandidateRolesReport{}, ErrInternal
	}
	if len(possessions) == 0 {
		return CandidateRolesReport{}, ErrNoSkillsRecorded
	}

	roles, err := u.roles.AllWithRequirements(ctx, opts.Department)
	if err != nil {
		return CandidateRolesReport{}, ErrInternal
	}

	ranks, err := match.RankRoles(ctx, toPossessions(possessions), toRoles(roles), u.rankConfig(opts))
	if err != nil {
		return CandidateRolesReport{}, err
	}

	return CandidateRolesReport{
		CandidateID:   candidate.ID,
		CandidateName: candidate.FullName,
		Evaluated:     len(roles),
		Ranks:         ranks,
	}, nil
}

func toCandidates(members []repository.PopulationMember) []match.Candidate {
	out := make([]match.Candidate, 0, len(members))
	for _, m := range members {
		out = append(out, match.Candidate{
			ID:          m.UserID,
			Name:        m.FullName,
			Possessions: toPossessions(m.Possessions),
		})
	}
	return out
}

func toRoles(items []repository.RoleWithRequirements) []match.Role {
	out := make([]match.Role, 0, len(items))
	for _, it := range items {
		out = append(out, match.Role{
			ID:           it.Role.ID,
			Title:        it.Role.Title,
			Department:   it.Role.Department,
			Requirements: toRequirements(it.Requirements),
		})
	}
	return out
}
