package engine

import "fmt"

type RecommendationType string

const (
	RecommendSkillBuilding RecommendationType = "skill-building"
	RecommendExploration   RecommendationType = "exploration"
	RecommendOptimized     RecommendationType = "optimized"
)

const FallbackOptimizedTopic = "hands-on-coding"

type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Topic       string             `json:"topic"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    Priority           `json:"priority"`
	Difficulty  SkillLevel         `json:"difficulty"`
}

// ComposeRecommendations merges weak-area, interest and pattern based
// suggestions, in that order, and keeps the first limit entries.
func (e *Engine) ComposeRecommendations(p Profile, history []ActivityRecord, limit int) []Recommendation {
	if limit <= 0 {
		limit = e.th.RecommendationLimit
	}
	p = NormalizeProfile(p)

	recs := []Recommendation{}
	for _, area := range p.WeakAreas {
		recs = append(recs, Recommendation{
			Type:        RecommendSkillBuilding,
			Topic:       area,
			Title:       fmt.Sprintf("Strengthen %s", area),
			Description: fmt.Sprintf("Targeted exercises to close the gap in %s", area),
			Priority:    PriorityHigh,
			Difficulty:  p.SkillLevel,
		})
	}
	for _, interest := range p.Interests {
		recs = append(recs, Recommendation{
			Type:        RecommendExploration,
			Topic:       interest,
			Title:       fmt.Sprintf("Explore %s", interest),
			Description: fmt.Sprintf("Go one step further in %s", interest),
			Priority:    PriorityMedium,
			Difficulty:  p.SkillLevel.Next(),
		})
	}
	recs = append(recs, optimizedRecommendation(p, history))

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func optimizedRecommendation(p Profile, history []ActivityRecord) Recommendation {
	if len(history) > 0 {
		if best, ok := BestPattern(AnalyzePatterns(history)); ok {
			return Recommendation{
				Type:        RecommendOptimized,
				Topic:       best.TopicType,
				Title:       fmt.Sprintf("More %s in the %s", best.TopicType, best.TimeOfDay),
				Description: fmt.Sprintf("Your success rate peaks at %.0f%% with %s sessions in the %s", best.SuccessRate, best.TopicType, best.TimeOfDay),
				Priority:    PriorityHigh,
				Difficulty:  p.SkillLevel,
			}
		}
	}
	return Recommendation{
		Type:        RecommendOptimized,
		Topic:       FallbackOptimizedTopic,
		Title:       "Hands-on coding practice",
		Description: "Short practical coding sessions are the quickest way to build momentum",
		Priority:    PriorityHigh,
		Difficulty:  p.SkillLevel,
	}
}
