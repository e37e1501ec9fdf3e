package engine

import "strings"

// DetectLearningStyle sums interaction weights per style and returns the
// strongest one. Ties go to the earlier style in LearningStyles.
func (e *Engine) DetectLearningStyle(records []ActivityRecord) LearningStyle {
	scores := make(map[LearningStyle]float64, len(LearningStyles))
	for _, r := range records {
		style, ok := e.ref.InteractionStyles[strings.ToLower(strings.TrimSpace(r.Type))]
		if !ok {
			continue
		}
		weight := 1.0
		if r.EngagementScore != nil {
			weight = *r.EngagementScore
		}
		scores[style] += weight
	}

	best := LearningStyles[0]
	for _, s := range LearningStyles[1:] {
		if scores[s] > scores[best] {
			best = s
		}
	}
	return best
}
