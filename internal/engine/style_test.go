package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func engagement(v float64) *float64 { return &v }

func TestDetectLearningStyle(t *testing.T) {
	e := Default()
	tests := []struct {
		name     string
		records  []ActivityRecord
		expected LearningStyle
	}{
		{"no records", nil, StyleVisual},
		{"unknown interactions only", []ActivityRecord{{Type: "quiz"}, {Type: "chat"}}, StyleVisual},
		{
			"engagement weighted",
			[]ActivityRecord{
				{Type: "video", EngagementScore: engagement(2)},
				{Type: "coding", EngagementScore: engagement(5)},
			},
			StyleKinesthetic,
		},
		{
			"missing engagement counts as one",
			[]ActivityRecord{{Type: "podcast"}, {Type: "lecture"}, {Type: "video"}},
			StyleAuditory,
		},
		{
			"type lookup ignores case and spaces",
			[]ActivityRecord{{Type: "  Documentation "}, {Type: "ARTICLE"}},
			StyleReading,
		},
		{
			"tie keeps canonical order",
			[]ActivityRecord{{Type: "article"}, {Type: "audio"}},
			StyleAuditory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.DetectLearningStyle(tt.records))
		})
	}
}

func TestDetectLearningStyle_UsesReferenceMapping(t *testing.T) {
	ref := DefaultReference()
	ref.InteractionStyles = map[string]LearningStyle{"quiz": StyleReading}
	e := New(ref, DefaultThresholds())

	assert.Equal(t, StyleReading, e.DetectLearningStyle([]ActivityRecord{{Type: "quiz"}, {Type: "video"}}))
}
