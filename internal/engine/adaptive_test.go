package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoresToHistory(scores ...float64) []ActivityRecord {
	history := make([]ActivityRecord, len(scores))
	for i, s := range scores {
		history[i] = ActivityRecord{Type: "exercise", PerformanceScore: s}
	}
	return history
}

func TestAdjustDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		current  SkillLevel
		score    float64
		expected SkillLevel
	}{
		{"promote at 90", Intermediate, 90, Advanced},
		{"hold at 89", Intermediate, 89, Intermediate},
		{"demote at 60", Intermediate, 60, Beginner},
		{"hold at 61", Intermediate, 61, Intermediate},
		{"advanced stays advanced", Advanced, 100, Advanced},
		{"beginner stays beginner", Beginner, 0, Beginner},
		{"beginner promoted", Beginner, 95, Intermediate},
		{"advanced demoted", Advanced, 30, Intermediate},
		{"unknown level treated as beginner", SkillLevel("expert"), 75, Beginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdjustDifficulty(tt.current, tt.score))
		})
	}
}

func TestAdjustDifficultyIsTotal(t *testing.T) {
	for _, level := range SkillLevels {
		for score := 0; score <= 100; score++ {
			got := AdjustDifficulty(level, float64(score))
			assert.True(t, got.Valid(), "level=%s score=%d returned %q", level, score, got)
		}
	}
}

func TestAdaptLearningPath_PromotesOnImprovingHighScores(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")
	p.SkillLevel = Intermediate
	p.WeakAreas = []string{"Testing"}

	history := scoresToHistory(50, 85, 88, 90, 92, 84, 86, 95, 96, 98)
	path := e.AdaptLearningPath(p, history, []string{"Master React"})

	assert.Equal(t, TrendImproving, path.Trend)
	assert.InDelta(t, 86.4, path.AverageScore, 0.001)
	assert.Equal(t, Intermediate, path.CurrentDifficulty)
	assert.Equal(t, Advanced, path.AdjustedDifficulty)
	assert.Equal(t, []string{"Testing", "React Hooks", "State Management", "Component Patterns"}, path.RecommendedTopics)
	assert.Equal(t, 16, path.EstimatedWeeks)
	assert.Equal(t, 87, path.ConfidenceLevel)
	assert.Equal(t, "Advanced visual projects with architecture diagrams", path.LearningStrategy)
}

func TestAdaptLearningPath_DemotesOnDecliningLowScores(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")
	p.SkillLevel = Intermediate

	path := e.AdaptLearningPath(p, scoresToHistory(65, 65, 65, 40, 40, 40), nil)

	assert.Equal(t, TrendDeclining, path.Trend)
	assert.Equal(t, Beginner, path.AdjustedDifficulty)
	assert.Equal(t, BracketLow, scoreBracket(path.AverageScore))
}

func TestAdaptLearningPath_EmptyHistory(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")

	path := e.AdaptLearningPath(p, nil, nil)

	assert.Equal(t, TrendStable, path.Trend)
	assert.Equal(t, Beginner, path.AdjustedDifficulty)
	assert.Equal(t, 0.0, path.AverageScore)
	assert.Empty(t, path.RecommendedTopics)
	assert.Equal(t, 0, path.EstimatedWeeks)
	// 0.4*0 + 0.3*100 + 0.3*60
	assert.Equal(t, 48, path.ConfidenceLevel)
}

func TestAdaptLearningPath_TopicsDedupedAndCapped(t *testing.T) {
	e := Default()

	t.Run("capped at five", func(t *testing.T) {
		p := NewProfile("u1", "Ada")
		p.WeakAreas = []string{"Closures", "Recursion"}
		path := e.AdaptLearningPath(p, nil, []string{"learn react and node"})
		assert.Equal(t, []string{"Closures", "Recursion", "React Hooks", "State Management", "Component Patterns"}, path.RecommendedTopics)
	})

	t.Run("case-insensitive dedupe", func(t *testing.T) {
		p := NewProfile("u1", "Ada")
		p.WeakAreas = []string{"react hooks"}
		path := e.AdaptLearningPath(p, nil, []string{"React developer"})
		assert.Equal(t, []string{"react hooks", "State Management", "Component Patterns"}, path.RecommendedTopics)
	})
}

func TestAdaptLearningPath_PaceAdjustsEstimate(t *testing.T) {
	e := Default()
	tests := []struct {
		name     string
		level    SkillLevel
		pace     Pace
		weak     []string
		expected int
	}{
		{"slow beginner", Beginner, PaceSlow, []string{"Loops"}, 3},
		{"fast intermediate", Intermediate, PaceFast, []string{"A", "B", "C"}, 6},
		{"medium advanced", Advanced, PaceMedium, []string{"A", "B"}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile("u1", "Ada")
			p.SkillLevel = tt.level
			p.PreferredPace = tt.pace
			p.WeakAreas = tt.weak
			path := e.AdaptLearningPath(p, nil, nil)
			assert.Equal(t, tt.expected, path.EstimatedWeeks)
		})
	}
}

func TestScoreTrend(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected Trend
	}{
		{"too few scores", []float64{10, 90, 95}, TrendStable},
		{"within deadband", []float64{70, 70, 70, 74, 75, 74}, TrendStable},
		{"exactly five points up", []float64{70, 70, 70, 75, 75, 75}, TrendStable},
		{"improving", []float64{60, 60, 60, 70, 70, 70}, TrendImproving},
		{"declining", []float64{80, 80, 80, 60, 60, 60}, TrendDeclining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreTrend(tt.scores))
		})
	}
}
