package engine

const (
	missingSkillDemand = 75
	strongSkillDemand  = 80
)

type TrendAnalysis struct {
	TrendingSkills        []TrendingSkill `json:"trendingSkills"`
	Missing               []TrendingSkill `json:"missing"`
	Outdated              []string        `json:"outdated"`
	Strong                []string        `json:"strong"`
	EmergingOpportunities []string        `json:"emergingOpportunities"`
}

// AnalyzeIndustryTrends compares the learner's skills with the trend tables.
func (e *Engine) AnalyzeIndustryTrends(userSkills []string) TrendAnalysis {
	res := TrendAnalysis{
		TrendingSkills:        append([]TrendingSkill(nil), e.ref.TrendingSkills...),
		Missing:               []TrendingSkill{},
		Outdated:              []string{},
		Strong:                []string{},
		EmergingOpportunities: cloneStrings(e.ref.EmergingOpportunities),
	}

	for _, t := range e.ref.TrendingSkills {
		if t.Demand > missingSkillDemand && !matchesAny(t.Name, userSkills) {
			res.Missing = append(res.Missing, t)
		}
	}

	var strongTrending []string
	for _, t := range e.ref.TrendingSkills {
		if t.Demand > strongSkillDemand {
			strongTrending = append(strongTrending, t.Name)
		}
	}

	for _, s := range userSkills {
		if matchesAny(s, e.ref.DecliningSkills) {
			res.Outdated = append(res.Outdated, s)
		}
		if matchesAny(s, strongTrending) {
			res.Strong = append(res.Strong, s)
		}
	}
	return res
}
