package match

// Score compares a role's requirement set against a candidate's possessions.
//
// Every requirement lands in exactly one of Matches or Gaps, in requirement
// order. A possession at or above the minimum proficiency earns the full
// importance; one below it earns linear partial credit
// (importance * proficiency / minimum). A skill the candidate lacks earns
// nothing and gaps by the full minimum. Possessions that no requirement asks
// for are reported as Excess, in possession order.
//
// Empty inputs are valid: no requirements yields 0%, not an error.
func Score(reqs []SkillRequirement, possessions []SkillPossession) Result {
	// Last write wins; a candidate holds at most one entry per skill.
	bySkillID := make(map[int64]SkillPossession, len(possessions))
	for _, p := range possessions {
		bySkillID[p.SkillID] = p
	}

	required := make(map[int64]struct{}, len(reqs))

	res := Result{
		Matches: make([]SkillMatch, 0, len(reqs)),
		Gaps:    make([]SkillGap, 0),
		Excess:  make([]ExcessSkill, 0),
	}

	var totalImportance float64
	var totalCredited float64

	for _, r := range reqs {
		required[r.SkillID] = struct{}{}
		totalImportance += r.Importance

		p, ok := bySkillID[r.SkillID]
		if !ok {
			res.Gaps = append(res.Gaps, SkillGap{
				SkillID:              r.SkillID,
				SkillName:            r.SkillName,
				RequiredProficiency:  r.MinimumProficiency,
				CandidateProficiency: 0,
				Gap:                  r.MinimumProficiency,
				Importance:           r.Importance,
			})
			continue
		}

		if p.Proficiency >= r.MinimumProficiency {
			totalCredited += r.Importance
			res.Matches = append(res.Matches, SkillMatch{
				SkillID:              r.SkillID,
				SkillName:            r.SkillName,
				RequiredProficiency:  r.MinimumProficiency,
				CandidateProficiency: p.Proficiency,
				Importance:           r.Importance,
			})
			continue
		}

		totalCredited += r.Importance * (float64(p.Proficiency) / float64(r.MinimumProficiency))
		res.Gaps = append(res.Gaps, SkillGap{
			SkillID:              r.SkillID,
			SkillName:            r.SkillName,
			RequiredProficiency:  r.MinimumProficiency,
			CandidateProficiency: p.Proficiency,
			Gap:                  r.MinimumProficiency - p.Proficiency,
			Importance:           r.Importance,
		})
	}

	for _, p := range possessions {
		if _, ok := required[p.SkillID]; ok {
			continue
		}
		res.Excess = append(res.Excess, ExcessSkill{
			SkillID:     p.SkillID,
			SkillName:   p.SkillName,
			Proficiency: p.Proficiency,
		})
	}

	if totalImportance > 0 {
		res.OverallPercentage = (totalCredited / totalImportance) * 100
	}

	return res
}
