package service

import (
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/engine"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReference(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestEngineProvider_BuiltinReference(t *testing.T) {
	p, err := NewEngineProvider(config.EngineConfig{RecommendationLimit: 2})
	require.NoError(t, err)

	assert.Equal(t, engine.DefaultReference().Version, p.Engine().Reference().Version)
	assert.Equal(t, 2, p.Engine().Thresholds().RecommendationLimit)
	assert.NoError(t, p.Reload())
	assert.NoError(t, p.Watch(context.Background()))
}

func TestEngineProvider_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	writeReference(t, path, "version: v1\n")

	p, err := NewEngineProvider(config.EngineConfig{ReferencePath: path, StreakCelebrationDays: 5})
	require.NoError(t, err)
	first := p.Engine()
	assert.Equal(t, "v1", first.Reference().Version)

	writeReference(t, path, "career_paths: []\n")
	assert.Error(t, p.Reload())
	assert.Same(t, first, p.Engine())

	writeReference(t, path, "version: v2\n")
	require.NoError(t, p.Reload())
	assert.Equal(t, "v2", p.Engine().Reference().Version)
	assert.Equal(t, 5, p.Engine().Thresholds().StreakCelebrationDays)
	assert.Equal(t, "v1", first.Reference().Version)
}

func TestEngineProvider_MissingFile(t *testing.T) {
	_, err := NewEngineProvider(config.EngineConfig{ReferencePath: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
