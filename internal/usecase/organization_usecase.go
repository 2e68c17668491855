package usecase

import (
	"context"
	"log"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/match"
	"talent-match/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:organization"
	dashboardCacheTTL = 5 * time.Minute

	recentActivityLimit = 20
)

// DashboardCache is the slice of the cache the dashboard needs. A nil cache
// or a bypassing one simply recomputes on every call.
type DashboardCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RecentMatch struct {
	CandidateID     int64     `json:"candidate_id"`
	CandidateName   string    `json:"candidate_name"`
	RoleID          int64     `json:"role_id"`
	RoleTitle       string    `json:"role_title"`
	MatchPercentage float64   `json:"match_percentage"`
	MatchedAt       time.Time `json:"matched_at"`
}

// DashboardReport aggregates workforce analytics for the organization view.
type DashboardReport struct {
	TotalEmployees            int                   `json:"total_employees"`
	DepartmentDistribution    map[string]int        `json:"department_distribution"`
	SkillCategoryDistribution map[string]int        `json:"skill_category_distribution"`
	TopSkills                 []match.SkillCoverage `json:"top_skills"`
	CriticalSkillGaps         []match.CriticalGap   `json:"critical_skill_gaps"`
	RecentMatches             []RecentMatch         `json:"recent_matches"`
	GeneratedAt               time.Time             `json:"generated_at"`
}

type OrganizationUsecase interface {
	Dashboard(ctx context.Context) (DashboardReport, error)
	SkillCoverage(ctx context.Context) ([]match.SkillCoverage, error)
}

type Organization struct {
	users      repository.UserRepository
	skills     repository.SkillRepository
	userSkills repository.UserSkillRepository
	roles      repository.RoleRepository
	history    repository.MatchHistoryRepository

	cache  DashboardCache
	logger *log.Logger
	cfg    match.CoverageConfig
}

func NewOrganizationUsecase(
	users repository.UserRepository,
	skills repository.SkillRepository,
	userSkills repository.UserSkillRepository,
	roles repository.RoleRepository,
	history repository.MatchHistoryRepository,
	cache DashboardCache,
	logger *log.Logger,
	matching config.MatchingConfig,
) *Organization {
	return &Organization{
		users:      users,
		skills:     skills,
		userSkills: userSkills,
		roles:      roles,
		history:    history,
		cache:      cache,
		logger:     logger,
		cfg: match.CoverageConfig{
			CriticalGapCoverage: matching.CriticalGapCoverage,
			TopSkillsLimit:      matching.TopSkillsLimit,
		},
	}
}

func (u *Organization) Dashboard(ctx context.Context) (DashboardReport, error) {
	if u.cache != nil {
		var cached DashboardReport
		hit, err := u.cache.GetJSON(ctx, dashboardCacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	report, err := u.build(ctx)
	if err != nil {
		return DashboardReport{}, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, dashboardCacheKey, report, dashboardCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Dashboard] cache write failed | err=%v", err)
		}
	}
	return report, nil
}

// SkillCoverage returns the full per-skill coverage listing, ordered by
// skill id. Unlike the dashboard it is never cached.
func (u *Organization) SkillCoverage(ctx context.Context) ([]match.SkillCoverage, error) {
	members, err := u.userSkills.Population(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return match.Coverage(toCandidates(members)), nil
}

func (u *Organization) build(ctx context.Context) (DashboardReport, error) {
	total, err := u.users.Count(ctx)
	if err != nil {
		return DashboardReport{}, ErrInternal
	}

	byDept, err := u.users.CountByDepartment(ctx)
	if err != nil {
		return DashboardReport{}, ErrInternal
	}

	byCategory, err := u.skills.CountByCategory(ctx)
	if err != nil {
		return DashboardReport{}, ErrInternal
	}

	members, err := u.userSkills.Population(ctx)
	if err != nil {
		return DashboardReport{}, ErrInternal
	}

	rolesWithReqs, err := u.roles.AllWithRequirements(ctx, "")
	if err != nil {
		return DashboardReport{}, ErrInternal
	}

	population := toCandidates(members)
	gaps := match.CriticalGaps(population, toRoles(rolesWithReqs), u.cfg)

	recent := make([]RecentMatch, 0, recentActivityLimit)
	activity, err := u.history.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		// Dashboard still renders without the activity feed.
		if u.logger != nil {
			u.logger.Printf("[Dashboard] recent activity unavailable | err=%v", err)
		}
	} else {
		for _, a := range activity {
			recent = append(recent, RecentMatch{
				CandidateID:     a.CandidateID,
				CandidateName:   a.CandidateName,
				RoleID:          a.RoleID,
				RoleTitle:       a.RoleTitle,
				MatchPercentage: match.Round1(a.MatchPercentage),
				MatchedAt:       a.MatchedAt,
			})
		}
	}

	return DashboardReport{
		TotalEmployees:            total,
		DepartmentDistribution:    byDept,
		SkillCategoryDistribution: byCategory,
		TopSkills:                 match.TopSkills(population, u.cfg),
		CriticalSkillGaps:         gaps,
		RecentMatches:             recent,
		GeneratedAt:               time.Now().UTC(),
	}, nil
}
