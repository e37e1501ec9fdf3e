package engine

import "fmt"

type InsightType string

const (
	InsightRecommendation InsightType = "recommendation"
	InsightWarning        InsightType = "warning"
	InsightCelebration    InsightType = "celebration"
	InsightTip            InsightType = "tip"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Insight struct {
	Type       InsightType `json:"type"`
	Title      string      `json:"title"`
	Message    string      `json:"message"`
	Actionable bool        `json:"actionable"`
	Action     string      `json:"action,omitempty"`
	Priority   Priority    `json:"priority"`
	Category   string      `json:"category"`
}

type insightRule func(e *Engine, p Profile) (Insight, bool)

// 规则按顺序求值，结果不再按优先级排序
var insightRules = []insightRule{
	streakCelebration,
	weakAreaFocus,
	optimalTimeTip,
	streakLapsed,
}

func (e *Engine) GenerateInsights(p Profile) []Insight {
	insights := []Insight{}
	for _, rule := range insightRules {
		if in, ok := rule(e, p); ok {
			insights = append(insights, in)
		}
	}
	return insights
}

func streakCelebration(e *Engine, p Profile) (Insight, bool) {
	if p.CurrentStreak < e.th.StreakCelebrationDays {
		return Insight{}, false
	}
	return Insight{
		Type:     InsightCelebration,
		Title:    "Learning streak",
		Message:  fmt.Sprintf("You have kept a %d-day learning streak. Keep it going!", p.CurrentStreak),
		Priority: PriorityMedium,
		Category: "motivation",
	}, true
}

func weakAreaFocus(_ *Engine, p Profile) (Insight, bool) {
	if len(p.WeakAreas) == 0 {
		return Insight{}, false
	}
	area := p.WeakAreas[0]
	return Insight{
		Type:       InsightRecommendation,
		Title:      "Focus area",
		Message:    fmt.Sprintf("Spend extra practice time on %s to close this gap.", area),
		Actionable: true,
		Action:     "practice-" + area,
		Priority:   PriorityHigh,
		Category:   "skill-building",
	}, true
}

func optimalTimeTip(_ *Engine, p Profile) (Insight, bool) {
	if len(p.OptimalLearningTime) == 0 || p.OptimalLearningTime[0] == "" {
		return Insight{}, false
	}
	at := p.OptimalLearningTime[0]
	return Insight{
		Type:       InsightTip,
		Title:      "Best time to learn",
		Message:    fmt.Sprintf("You learn best around %s. Schedule your next session then.", at),
		Actionable: true,
		Action:     "schedule-session",
		Priority:   PriorityLow,
		Category:   "productivity",
	}, true
}

func streakLapsed(_ *Engine, p Profile) (Insight, bool) {
	if p.CurrentStreak > 0 || len(p.CompletedTopics) == 0 {
		return Insight{}, false
	}
	return Insight{
		Type:     InsightWarning,
		Title:    "Streak paused",
		Message:  "Your learning streak has lapsed. A short session today restarts it.",
		Priority: PriorityLow,
		Category: "motivation",
	}, true
}
