package engine

import "sort"

const (
	DefaultTopicType       = "general"
	defaultPatternDuration = 30
	neutralPatternScore    = 50
)

func neutralPattern() LearningPattern {
	return LearningPattern{
		TimeOfDay:       TimeMorning,
		Duration:        defaultPatternDuration,
		TopicType:       DefaultTopicType,
		SuccessRate:     neutralPatternScore,
		EngagementLevel: neutralPatternScore,
		CompletionRate:  neutralPatternScore,
	}
}

type patternKey struct {
	timeOfDay string
	topicType string
}

type patternAcc struct {
	count      int
	duration   float64
	success    float64
	engagement float64
	completion float64
}

// AnalyzePatterns groups the history by time of day and topic type and
// averages each bucket. An empty history yields a single neutral pattern.
func AnalyzePatterns(records []ActivityRecord) []LearningPattern {
	if len(records) == 0 {
		return []LearningPattern{neutralPattern()}
	}

	buckets := make(map[patternKey]*patternAcc)
	for _, r := range records {
		topic := r.TopicType
		if topic == "" {
			topic = DefaultTopicType
		}
		key := patternKey{timeOfDay: TimeOfDay(r.Timestamp.Hour()), topicType: topic}
		acc, ok := buckets[key]
		if !ok {
			acc = &patternAcc{}
			buckets[key] = acc
		}
		acc.count++
		acc.duration += r.ActualDuration
		acc.success += r.PerformanceScore
		acc.engagement += r.EngagementLevel
		acc.completion += r.CompletionRate * 100
	}

	patterns := make([]LearningPattern, 0, len(buckets))
	for key, acc := range buckets {
		n := float64(acc.count)
		patterns = append(patterns, LearningPattern{
			TimeOfDay:       key.timeOfDay,
			Duration:        acc.duration / n,
			TopicType:       key.topicType,
			SuccessRate:     clamp(acc.success/n, 0, 100),
			EngagementLevel: clamp(acc.engagement/n, 0, 100),
			CompletionRate:  clamp(acc.completion/n, 0, 100),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].TimeOfDay != patterns[j].TimeOfDay {
			return patterns[i].TimeOfDay < patterns[j].TimeOfDay
		}
		return patterns[i].TopicType < patterns[j].TopicType
	})
	return patterns
}

// BestPattern returns the pattern with the highest success rate; the first
// one wins on ties.
func BestPattern(patterns []LearningPattern) (LearningPattern, bool) {
	if len(patterns) == 0 {
		return LearningPattern{}, false
	}
	best := patterns[0]
	for _, p := range patterns[1:] {
		if p.SuccessRate > best.SuccessRate {
			best = p
		}
	}
	return best, true
}
