package match

import (
	"context"
	"sort"
	"sync"
)

const (
	DefaultMinMatchPercentage = 60.0
	DefaultRankLimit          = 10

	defaultRankWorkers = 8
)

// RankConfig carries the caller-supplied ranking knobs. Construct once in the
// hosting layer and pass it in; the ranker reads no ambient state.
type RankConfig struct {
	MinMatchPercentage float64
	Limit              int
	Workers            int
}

func DefaultRankConfig() RankConfig {
	return RankConfig{
		MinMatchPercentage: DefaultMinMatchPercentage,
		Limit:              DefaultRankLimit,
		Workers:            defaultRankWorkers,
	}
}

func (c RankConfig) normalized() RankConfig {
	if c.Limit <= 0 {
		c.Limit = DefaultRankLimit
	}
	if c.MinMatchPercentage < 0 {
		c.MinMatchPercentage = 0
	}
	if c.Workers <= 0 {
		c.Workers = defaultRankWorkers
	}
	return c
}

// Candidate is one population member to rank against a role.
type Candidate struct {
	ID          int64
	Name        string
	Possessions []SkillPossession
}

// Role is one posting to rank against a candidate.
type Role struct {
	ID           int64
	Title        string
	Department   string
	Requirements []SkillRequirement
}

type CandidateRank struct {
	CandidateID     int64
	CandidateName   string
	MatchPercentage float64
	SkillMatches    int
	SkillGaps       int
	ExcessSkills    int
}

type RoleRank struct {
	RoleID                int64
	RoleTitle             string
	Department            string
	MatchPercentage       float64
	SkillMatches          int
	SkillGaps             int
	RequiredTrainingWeeks int
}

// RankCandidates scores every candidate against one role's requirement set,
// drops those below cfg.MinMatchPercentage, sorts by percentage descending
// (ties by ascending candidate id) and returns at most cfg.Limit entries.
//
// Pair scoring runs across a bounded set of workers; each pair touches only
// its own inputs. If ctx is cancelled no partial result is returned.
// Candidates with no recorded possessions are skipped.
func RankCandidates(ctx context.Context, reqs []SkillRequirement, population []Candidate, cfg RankConfig) ([]CandidateRank, error) {
	cfg = cfg.normalized()

	results := make([]*CandidateRank, len(population))
	err := forEachPair(ctx, len(population), cfg.Workers, func(i int) {
		c := population[i]
		if len(c.Possessions) == 0 {
			return
		}
		res := Score(reqs, c.Possessions)
		if res.OverallPercentage < cfg.MinMatchPercentage {
			return
		}
		results[i] = &CandidateRank{
			CandidateID:     c.ID,
			CandidateName:   c.Name,
			MatchPercentage: res.OverallPercentage,
			SkillMatches:    len(res.Matches),
			SkillGaps:       len(res.Gaps),
			ExcessSkills:    len(res.Excess),
		}
	})
	if err != nil {
		return nil, err
	}

	out := make([]CandidateRank, 0, len(population))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchPercentage != out[j].MatchPercentage {
			return out[i].MatchPercentage > out[j].MatchPercentage
		}
		return out[i].CandidateID < out[j].CandidateID
	})

	if len(out) > cfg.Limit {
		out = out[:cfg.Limit]
	}
	return out, nil
}

// RankRoles is the mirror image of RankCandidates: one candidate's
// possessions against many roles. Ties break by ascending role id. Each entry
// carries the total estimated training weeks to close its gaps.
func RankRoles(ctx context.Context, possessions []SkillPossession, roles []Role, cfg RankConfig) ([]RoleRank, error) {
	cfg = cfg.normalized()

	results := make([]*RoleRank, len(roles))
	err := forEachPair(ctx, len(roles), cfg.Workers, func(i int) {
		role := roles[i]
		res := Score(role.Requirements, possessions)
		if res.OverallPercentage < cfg.MinMatchPercentage {
			return
		}
		results[i] = &RoleRank{
			RoleID:                role.ID,
			RoleTitle:             role.Title,
			Department:            role.Department,
			MatchPercentage:       res.OverallPercentage,
			SkillMatches:          len(res.Matches),
			SkillGaps:             len(res.Gaps),
			RequiredTrainingWeeks: TotalTrainingWeeks(res.Gaps),
		}
	})
	if err != nil {
		return nil, err
	}

	out := make([]RoleRank, 0, len(roles))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchPercentage != out[j].MatchPercentage {
			return out[i].MatchPercentage > out[j].MatchPercentage
		}
		return out[i].RoleID < out[j].RoleID
	})

	if len(out) > cfg.Limit {
		out = out[:cfg.Limit]
	}
	return out, nil
}

// forEachPair fans n independent index jobs out over a fixed worker set and
// joins before returning. On cancellation the workers stop picking up work
// and the caller gets ctx.Err().
func forEachPair(ctx context.Context, n, workers int, fn func(i int)) error {
	if n == 0 {
		return ctx.Err()
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return ctx.Err()
}
