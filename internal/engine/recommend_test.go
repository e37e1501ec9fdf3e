package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeRecommendations_Order(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")
	p.WeakAreas = []string{"Testing"}
	p.Interests = []string{"Go", "Rust"}

	recs := e.ComposeRecommendations(p, nil, 0)

	require.Len(t, recs, 4)
	assert.Equal(t, RecommendSkillBuilding, recs[0].Type)
	assert.Equal(t, "Testing", recs[0].Topic)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, Beginner, recs[0].Difficulty)

	assert.Equal(t, RecommendExploration, recs[1].Type)
	assert.Equal(t, "Go", recs[1].Topic)
	assert.Equal(t, Intermediate, recs[1].Difficulty)
	assert.Equal(t, "Rust", recs[2].Topic)

	assert.Equal(t, RecommendOptimized, recs[3].Type)
	assert.Equal(t, FallbackOptimizedTopic, recs[3].Topic)
}

func TestComposeRecommendations_Limit(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")
	p.WeakAreas = []string{"A", "B", "C", "D"}
	p.Interests = []string{"E", "F"}

	assert.Len(t, e.ComposeRecommendations(p, nil, 0), DefaultRecommendationLimit)
	assert.Len(t, e.ComposeRecommendations(p, nil, 2), 2)

	small := New(nil, Thresholds{RecommendationLimit: 3})
	assert.Len(t, small.ComposeRecommendations(p, nil, 0), 3)
}

func TestComposeRecommendations_AdvancedInterestsStayAdvanced(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")
	p.SkillLevel = Advanced
	p.Interests = []string{"Compilers"}

	recs := e.ComposeRecommendations(p, nil, 0)
	require.Len(t, recs, 2)
	assert.Equal(t, Advanced, recs[0].Difficulty)
}

func TestComposeRecommendations_OptimizedFromHistory(t *testing.T) {
	e := Default()
	p := NewProfile("u1", "Ada")
	history := []ActivityRecord{
		{Timestamp: at(9), TopicType: "algorithms", PerformanceScore: 55},
		{Timestamp: at(19), TopicType: "projects", PerformanceScore: 92},
	}

	recs := e.ComposeRecommendations(p, history, 0)

	require.Len(t, recs, 1)
	assert.Equal(t, RecommendOptimized, recs[0].Type)
	assert.Equal(t, "projects", recs[0].Topic)
	assert.Contains(t, recs[0].Title, TimeEvening)
}
