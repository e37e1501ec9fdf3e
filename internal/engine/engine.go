// Package engine implements the learner-modeling and recommendation rules.
//
// Every method takes the profile and history it works on as arguments and
// returns a fresh value, so one Engine can serve concurrent requests. The
// only state an Engine holds is its reference dataset and thresholds, both
// treated as read-only after construction.
package engine

import "time"

const (
	DefaultStreakCelebrationDays = 7
	DefaultRecommendationLimit   = 5
	DefaultPromoteScore          = 90
	DefaultDemoteScore           = 60
)

type Thresholds struct {
	StreakCelebrationDays int
	RecommendationLimit   int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		StreakCelebrationDays: DefaultStreakCelebrationDays,
		RecommendationLimit:   DefaultRecommendationLimit,
	}
}

type Engine struct {
	ref *Reference
	th  Thresholds
}

// New 构造引擎；ref 为 nil 时使用内置参考数据
func New(ref *Reference, th Thresholds) *Engine {
	if ref == nil {
		ref = DefaultReference()
	}
	def := DefaultThresholds()
	if th.StreakCelebrationDays <= 0 {
		th.StreakCelebrationDays = def.StreakCelebrationDays
	}
	if th.RecommendationLimit <= 0 {
		th.RecommendationLimit = def.RecommendationLimit
	}
	return &Engine{ref: ref, th: th}
}

func Default() *Engine {
	return New(DefaultReference(), DefaultThresholds())
}

func (e *Engine) Reference() *Reference { return e.ref }

func (e *Engine) Thresholds() Thresholds { return e.th }

type EvaluateRequest struct {
	Profile   Profile          `json:"profile"`
	History   []ActivityRecord `json:"history"`
	Topic     string           `json:"topic,omitempty"`
	Timeframe string           `json:"timeframe,omitempty"`
	Action    Action           `json:"action,omitempty"`
	EventData EventData        `json:"eventData"`
	Limit     int              `json:"limit,omitempty"`
}

type EvaluateResult struct {
	Insights        []Insight          `json:"insights"`
	Recommendations []Recommendation   `json:"recommendations"`
	Predictive      PredictiveAnalysis `json:"predictive"`
	Achievements    []Achievement      `json:"achievements"`
	Motivation      *MotivationReport  `json:"motivation,omitempty"`
	DetectedStyle   LearningStyle      `json:"detectedStyle,omitempty"`
}

// Evaluate runs the dashboard bundle for one profile.
func (e *Engine) Evaluate(req EvaluateRequest, now time.Time) EvaluateResult {
	p := NormalizeProfile(req.Profile)

	topic := req.Topic
	if topic == "" && len(p.Goals) > 0 {
		topic = p.Goals[0]
	}
	if topic == "" {
		topic = DefaultTopicType
	}

	res := EvaluateResult{
		Insights:        e.GenerateInsights(p),
		Recommendations: e.ComposeRecommendations(p, req.History, req.Limit),
		Predictive:      e.PredictLearningOutcome(p, topic, req.Timeframe),
		Achievements:    []Achievement{},
	}
	if req.Action != "" {
		applied := ApplyEvent(p, req.Action, req.EventData)
		res.Achievements = e.CheckAchievements(applied, req.Action, req.EventData, now)
	}
	if len(req.History) > 0 {
		m := TrackMotivationLevel(req.History)
		res.Motivation = &m
		res.DetectedStyle = e.DetectLearningStyle(req.History)
	}
	return res
}
