package engine

import (
	"math"
	"strings"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const (
	avgScoreWindow     = 10
	trendWindow        = 3
	trendDeadband      = 5.0
	confidenceWindow   = 5
	maxPathTopics      = 5
	promoteAvgScore    = 85.0
	demoteAvgScore     = 60.0
	highBracketScore   = 80.0
	mediumBracketScore = 60.0
	goalsAligned       = 80.0
	goalsMissing       = 60.0
)

// AdjustDifficulty moves one tier up at score >= 90 and one tier down at
// score <= 60. An unknown level is treated as beginner.
func AdjustDifficulty(current SkillLevel, score float64) SkillLevel {
	if !current.Valid() {
		current = Beginner
	}
	switch {
	case score >= DefaultPromoteScore:
		return current.Next()
	case score <= DefaultDemoteScore:
		return current.Previous()
	}
	return current
}

type AdaptivePath struct {
	AverageScore       float64    `json:"averageScore"`
	Trend              Trend      `json:"trend"`
	CurrentDifficulty  SkillLevel `json:"currentDifficulty"`
	AdjustedDifficulty SkillLevel `json:"adjustedDifficulty"`
	RecommendedTopics  []string   `json:"recommendedTopics"`
	LearningStrategy   string     `json:"learningStrategy"`
	EstimatedWeeks     int        `json:"estimatedCompletionWeeks"`
	ConfidenceLevel    int        `json:"confidenceLevel"`
}

var weeksPerTopic = map[SkillLevel]float64{
	Beginner:     2,
	Intermediate: 3,
	Advanced:     4,
}

var paceFactor = map[Pace]float64{
	PaceSlow:   1.5,
	PaceMedium: 1,
	PaceFast:   0.7,
}

// AdaptLearningPath plans the next stretch of learning from recent scores.
func (e *Engine) AdaptLearningPath(p Profile, history []ActivityRecord, goals []string) AdaptivePath {
	p = NormalizeProfile(p)
	scores := performanceScores(history)

	avg := mean(lastN(scores, avgScoreWindow))
	trend := scoreTrend(scores)

	adjusted := p.SkillLevel
	if avg > promoteAvgScore && trend == TrendImproving {
		adjusted = p.SkillLevel.Next()
	} else if avg < demoteAvgScore && trend == TrendDeclining {
		adjusted = p.SkillLevel.Previous()
	}

	topics := e.pathTopics(p.WeakAreas, goals)

	weeks := float64(len(topics)) * weeksPerTopic[adjusted] * paceFactor[p.PreferredPace]

	recent := lastN(scores, confidenceWindow)
	consistency := clamp(100-2*stddev(recent), 0, 100)
	alignment := goalsMissing
	if len(goals) > 0 {
		alignment = goalsAligned
	}
	confidence := 0.4*mean(recent) + 0.3*consistency + 0.3*alignment

	return AdaptivePath{
		AverageScore:       math.Round(avg*100) / 100,
		Trend:              trend,
		CurrentDifficulty:  p.SkillLevel,
		AdjustedDifficulty: adjusted,
		RecommendedTopics:  topics,
		LearningStrategy:   e.ref.strategyFor(scoreBracket(avg), p.LearningStyle),
		EstimatedWeeks:     int(math.Round(weeks)),
		ConfidenceLevel:    int(math.Round(confidence)),
	}
}

// scoreTrend compares the last three scores with the three before them.
// Fewer than six scores is reported as stable.
func scoreTrend(scores []float64) Trend {
	if len(scores) < 2*trendWindow {
		return TrendStable
	}
	n := len(scores)
	recent := mean(scores[n-trendWindow:])
	prior := mean(scores[n-2*trendWindow : n-trendWindow])
	switch {
	case recent > prior+trendDeadband:
		return TrendImproving
	case recent < prior-trendDeadband:
		return TrendDeclining
	}
	return TrendStable
}

func scoreBracket(avg float64) ScoreBracket {
	switch {
	case avg >= highBracketScore:
		return BracketHigh
	case avg >= mediumBracketScore:
		return BracketMedium
	}
	return BracketLow
}

func (e *Engine) pathTopics(weakAreas, goals []string) []string {
	topics := []string{}
	seen := make(map[string]bool)
	add := func(t string) {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" || seen[key] || len(topics) >= maxPathTopics {
			return
		}
		seen[key] = true
		topics = append(topics, t)
	}

	for _, w := range weakAreas {
		add(w)
	}
	for _, goal := range goals {
		g := strings.ToLower(goal)
		for _, gt := range e.ref.GoalTopics {
			if gt.Keyword != "" && strings.Contains(g, strings.ToLower(gt.Keyword)) {
				for _, t := range gt.Topics {
					add(t)
				}
			}
		}
	}
	return topics
}

func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)))
}
