package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultReferenceIsValid(t *testing.T) {
	ref := DefaultReference()
	require.NoError(t, ref.Validate())

	for _, bracket := range []ScoreBracket{BracketHigh, BracketMedium, BracketLow} {
		for _, style := range LearningStyles {
			assert.NotEqual(t, ref.DefaultStrategy, ref.strategyFor(bracket, style), "%s/%s", bracket, style)
		}
	}
}

func TestParseReference_OverridesKeepDefaults(t *testing.T) {
	data := []byte(`
version: "2026-q2"
prediction:
  learning_velocity: 0.5
  estimated_time_to_goal: "1 month"
career_paths:
  - title: Go Developer
    required_skills: [Go, SQL, Docker]
    keywords: [backend, go]
    market_demand: 80
`)

	ref, err := ParseReference(data)
	require.NoError(t, err)

	assert.Equal(t, "2026-q2", ref.Version)
	assert.Equal(t, 0.5, ref.Prediction.LearningVelocity)
	assert.Equal(t, "1 month", ref.Prediction.EstimatedTimeToGoal)
	require.Len(t, ref.CareerPaths, 1)
	assert.Equal(t, "Go Developer", ref.CareerPaths[0].Title)
	// untouched sections keep the built-in tables
	assert.Equal(t, DefaultReference().TrendingSkills, ref.TrendingSkills)
	assert.Equal(t, StyleKinesthetic, ref.InteractionStyles["coding"])
}

func TestParseReference_InteractionKeysAreLowercased(t *testing.T) {
	data := []byte(`
interaction_styles:
  " Video ": auditory
  Screencast: visual
`)

	ref, err := ParseReference(data)
	require.NoError(t, err)

	assert.Equal(t, StyleAuditory, ref.InteractionStyles["video"])
	assert.Equal(t, StyleVisual, ref.InteractionStyles["screencast"])
	assert.NotContains(t, ref.InteractionStyles, "Screencast")
	assert.NotContains(t, ref.InteractionStyles, " Video ")

	e := New(ref, Thresholds{})
	got := e.DetectLearningStyle([]ActivityRecord{{Type: "VIDEO"}, {Type: "video"}, {Type: "coding"}})
	assert.Equal(t, StyleAuditory, got)
}

func TestParseReference_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "career_paths: [unclosed"},
		{"unknown interaction style", "interaction_styles:\n  quiz: telepathic\n"},
		{"unknown strategy style", "strategies:\n  - bracket: high\n    style: smell\n    strategy: x\n"},
		{"demand out of range", "career_paths:\n  - title: X\n    market_demand: 140\n"},
		{"untitled path", "career_paths:\n  - market_demand: 50\n"},
		{"no career paths", "career_paths: []\n"},
		{"negative velocity", "prediction:\n  learning_velocity: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadReference(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReference(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// a dump of the built-in tables loads back unchanged
	data, err := yaml.Marshal(DefaultReference())
	require.NoError(t, err)
	path := filepath.Join(dir, "reference.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	ref, err := LoadReference(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultReference(), ref)
}
