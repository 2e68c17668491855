package match

import "sort"

const (
	DefaultCriticalGapCoverage = 20.0
	DefaultTopSkillsLimit      = 10
)

// CoverageConfig carries the aggregation knobs, passed explicitly by the
// hosting layer.
type CoverageConfig struct {
	// CriticalGapCoverage is the coverage percentage below which a
	// role-demanded skill counts as a critical gap.
	CriticalGapCoverage float64
	TopSkillsLimit      int
}

func DefaultCoverageConfig() CoverageConfig {
	return CoverageConfig{
		CriticalGapCoverage: DefaultCriticalGapCoverage,
		TopSkillsLimit:      DefaultTopSkillsLimit,
	}
}

func (c CoverageConfig) normalized() CoverageConfig {
	if c.CriticalGapCoverage <= 0 {
		c.CriticalGapCoverage = DefaultCriticalGapCoverage
	}
	if c.TopSkillsLimit <= 0 {
		c.TopSkillsLimit = DefaultTopSkillsLimit
	}
	return c
}

// SkillCoverage is how widely one skill is held across a population.
type SkillCoverage struct {
	SkillID            int64
	SkillName          string
	HolderCount        int
	CoveragePercentage float64
}

// CriticalGap is a skill demanded by many roles but rare in the population.
type CriticalGap struct {
	SkillID            int64
	SkillName          string
	RoleCount          int
	HolderCount        int
	CoveragePercentage float64
}

type skillTally struct {
	id      int64
	name    string
	holders int
}

// Coverage computes per-skill population coverage. A member holding a skill
// at any proficiency counts once; coverage is holders / population size. An
// empty population yields 0% everywhere, never a division error.
func Coverage(population []Candidate) []SkillCoverage {
	tallies := tallyHolders(population)

	out := make([]SkillCoverage, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, SkillCoverage{
			SkillID:            t.id,
			SkillName:          t.name,
			HolderCount:        t.holders,
			CoveragePercentage: coveragePct(t.holders, len(population)),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SkillID < out[j].SkillID })
	return out
}

// TopSkills ranks skills by holder count descending (ties by ascending skill
// id) and returns at most cfg.TopSkillsLimit entries.
func TopSkills(population []Candidate, cfg CoverageConfig) []SkillCoverage {
	cfg = cfg.normalized()
	tallies := tallyHolders(population)

	out := make([]SkillCoverage, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, SkillCoverage{
			SkillID:            t.id,
			SkillName:          t.name,
			HolderCount:        t.holders,
			CoveragePercentage: coveragePct(t.holders, len(population)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].HolderCount != out[j].HolderCount {
			return out[i].HolderCount > out[j].HolderCount
		}
		return out[i].SkillID < out[j].SkillID
	})

	if len(out) > cfg.TopSkillsLimit {
		out = out[:cfg.TopSkillsLimit]
	}
	return out
}

// CriticalGaps finds skills that appear in many roles' requirement sets but
// whose population coverage sits below cfg.CriticalGapCoverage. Results sort
// by role count descending, then coverage ascending, then skill id, limited
// to cfg.TopSkillsLimit entries.
func CriticalGaps(population []Candidate, roles []Role, cfg CoverageConfig) []CriticalGap {
	cfg = cfg.normalized()

	holders := make(map[int64]int)
	for _, t := range tallyHolders(population) {
		holders[t.id] = t.holders
	}

	type demand struct {
		name  string
		roles int
	}
	demanded := make(map[int64]*demand)
	order := make([]int64, 0)
	for _, role := range roles {
		seen := make(map[int64]struct{}, len(role.Requirements))
		for _, r := range role.Requirements {
			if _, dup := seen[r.SkillID]; dup {
				continue
			}
			seen[r.SkillID] = struct{}{}
			d, ok := demanded[r.SkillID]
			if !ok {
				d = &demand{name: r.SkillName}
				demanded[r.SkillID] = d
				order = append(order, r.SkillID)
			}
			d.roles++
		}
	}

	out := make([]CriticalGap, 0, len(order))
	for _, skillID := range order {
		d := demanded[skillID]
		held := holders[skillID]
		cov := coveragePct(held, len(population))
		if cov >= cfg.CriticalGapCoverage {
			continue
		}
		out = append(out, CriticalGap{
			SkillID:            skillID,
			SkillName:          d.name,
			RoleCount:          d.roles,
			HolderCount:        held,
			CoveragePercentage: cov,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].RoleCount != out[j].RoleCount {
			return out[i].RoleCount > out[j].RoleCount
		}
		if out[i].CoveragePercentage != out[j].CoveragePercentage {
			return out[i].CoveragePercentage < out[j].CoveragePercentage
		}
		return out[i].SkillID < out[j].SkillID
	})

	if len(out) > cfg.TopSkillsLimit {
		out = out[:cfg.TopSkillsLimit]
	}
	return out
}

func tallyHolders(population []Candidate) []skillTally {
	byID := make(map[int64]*skillTally)
	order := make([]int64, 0)

	for _, member := range population {
		seen := make(map[int64]struct{}, len(member.Possessions))
		for _, p := range member.Possessions {
			if _, dup := seen[p.SkillID]; dup {
				continue
			}
			seen[p.SkillID] = struct{}{}
			t, ok := byID[p.SkillID]
			if !ok {
				t = &skillTally{id: p.SkillID, name: p.SkillName}
				byID[p.SkillID] = t
				order = append(order, p.SkillID)
			}
			t.holders++
		}
	}

	out := make([]skillTally, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func coveragePct(holders, populationSize int) float64 {
	if populationSize <= 0 {
		return 0
	}
	return float64(holders) / float64(populationSize) * 100
}
