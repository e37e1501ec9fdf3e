package engine

import "time"

// ActivityRecord is one interaction or session from the learner's log.
// Durations are minutes, CompletionRate is 0..1, EngagementLevel and
// PerformanceScore are 0..100. Missing values read as zero.
type ActivityRecord struct {
	Timestamp        time.Time `json:"timestamp"`
	Type             string    `json:"type"`
	TopicType        string    `json:"topicType,omitempty"`
	EngagementScore  *float64  `json:"engagementScore,omitempty"`
	Completed        bool      `json:"completed,omitempty"`
	CompletionRate   float64   `json:"completionRate,omitempty"`
	EngagementLevel  float64   `json:"engagementLevel,omitempty"`
	PlannedDuration  float64   `json:"plannedDuration,omitempty"`
	ActualDuration   float64   `json:"actualDuration,omitempty"`
	PerformanceScore float64   `json:"performanceScore,omitempty"`
}

const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
)

// TimeOfDay buckets an hour of the day.
func TimeOfDay(hour int) string {
	if hour < 12 {
		return TimeMorning
	} else if hour < 17 {
		return TimeAfternoon
	}
	return TimeEvening
}

func performanceScores(records []ActivityRecord) []float64 {
	scores := make([]float64, 0, len(records))
	for _, r := range records {
		scores = append(scores, r.PerformanceScore)
	}
	return scores
}
