package engine

import (
	"fmt"
	"math"
	"strings"
)

const (
	baseCompletionProbability = 0.5
	maxCompletionProbability  = 0.95
	relatedExperienceDivisor  = 10
	predictorStreakThreshold  = 5
	maxCareerProbability      = 95
)

type PredictiveAnalysis struct {
	Topic                 string   `json:"topic"`
	CompletionProbability int      `json:"completionProbability"`
	EstimatedTimeToGoal   string   `json:"estimatedTimeToGoal"`
	RecommendedActions    []string `json:"recommendedActions"`
	PotentialObstacles    []string `json:"potentialObstacles"`
	SuccessFactors        []string `json:"successFactors"`
}

// PredictLearningOutcome estimates how likely the learner is to finish topic.
// relatedExperience is not clamped on its own; only the final sum is
// clamped to [0, 0.95].
func (e *Engine) PredictLearningOutcome(p Profile, topic, timeframe string) PredictiveAnalysis {
	prob := baseCompletionProbability

	switch p.SkillLevel {
	case Advanced:
		prob += 0.3
	case Intermediate:
		prob += 0.1
	}

	related := 0
	needle := strings.ToLower(strings.TrimSpace(topic))
	for _, t := range p.CompletedTopics {
		if needle != "" && strings.Contains(strings.ToLower(t), needle) {
			related++
		}
	}
	relatedExperience := float64(related) / relatedExperienceDivisor
	prob += 0.2 * relatedExperience

	prob += 0.2 * e.ref.Prediction.LearningVelocity

	if p.CurrentStreak > predictorStreakThreshold {
		prob += 0.1
	}

	prob = clamp(prob, 0, maxCompletionProbability)

	estimate := e.ref.Prediction.EstimatedTimeToGoal
	if timeframe != "" {
		estimate = timeframe
	}

	actions := []string{fmt.Sprintf("Set a weekly milestone for %s", topic)}
	actions = append(actions, e.ref.Prediction.RecommendedActions...)

	return PredictiveAnalysis{
		Topic:                 topic,
		CompletionProbability: int(math.Round(prob * 100)),
		EstimatedTimeToGoal:   estimate,
		RecommendedActions:    actions,
		PotentialObstacles:    cloneStrings(e.ref.Prediction.PotentialObstacles),
		SuccessFactors:        cloneStrings(e.ref.Prediction.SuccessFactors),
	}
}

type CareerPrediction struct {
	Path          string        `json:"path"`
	Probability   int           `json:"probability"`
	Score         float64       `json:"score"`
	MarketDemand  float64       `json:"marketDemand"`
	SalaryRange   string        `json:"salaryRange,omitempty"`
	MatchedSkills []string      `json:"matchedSkills"`
	MissingSkills []string      `json:"missingSkills"`
	Timeline      []CareerPhase `json:"timeline"`
	Timeframe     string        `json:"timeframe,omitempty"`
}

// PredictCareerPath scores each catalog path and returns the best one.
// Scores are expressed in percentage points.
func (e *Engine) PredictCareerPath(skills, interests []string, timeframe string) CareerPrediction {
	var best CareerPrediction
	bestScore := -1.0

	for _, path := range e.ref.CareerPaths {
		matched, missing := splitSkills(path.RequiredSkills, skills)

		skillOverlap := 0.0
		if len(path.RequiredSkills) > 0 {
			skillOverlap = float64(len(matched)) / float64(len(path.RequiredSkills))
		}

		interestOverlap := 0.0
		if len(interests) > 0 {
			hits := 0
			keywords := append(cloneStrings(path.Keywords), path.Title)
			for _, in := range interests {
				if matchesAny(in, keywords) {
					hits++
				}
			}
			interestOverlap = float64(hits) / float64(len(interests))
		}

		score := 100 * (0.4*skillOverlap + 0.3*interestOverlap + 0.3*(path.MarketDemand/100))
		if score > bestScore {
			bestScore = score
			best = CareerPrediction{
				Path:          path.Title,
				Probability:   int(math.Round(math.Min(maxCareerProbability, score))),
				Score:         math.Round(score*100) / 100,
				MarketDemand:  path.MarketDemand,
				SalaryRange:   path.SalaryRange,
				MatchedSkills: matched,
				MissingSkills: missing,
				Timeline:      append([]CareerPhase(nil), path.Timeline...),
				Timeframe:     timeframe,
			}
		}
	}
	return best
}

func splitSkills(required, have []string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, r := range required {
		if matchesAny(r, have) {
			matched = append(matched, r)
		} else {
			missing = append(missing, r)
		}
	}
	return matched, missing
}
