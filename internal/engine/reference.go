package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type CareerPhase struct {
	Phase    string   `json:"phase" yaml:"phase"`
	Duration string   `json:"duration" yaml:"duration"`
	Focus    []string `json:"focus" yaml:"focus"`
}

type CareerPath struct {
	Title          string        `json:"title" yaml:"title"`
	RequiredSkills []string      `json:"requiredSkills" yaml:"required_skills"`
	Keywords       []string      `json:"keywords" yaml:"keywords"`
	MarketDemand   float64       `json:"marketDemand" yaml:"market_demand"`
	SalaryRange    string        `json:"salaryRange,omitempty" yaml:"salary_range"`
	Timeline       []CareerPhase `json:"timeline" yaml:"timeline"`
}

type TrendingSkill struct {
	Name   string  `json:"name" yaml:"name"`
	Growth float64 `json:"growth" yaml:"growth"`
	Demand float64 `json:"demand" yaml:"demand"`
}

type GoalTopics struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	Topics  []string `json:"topics" yaml:"topics"`
}

type ScoreBracket string

const (
	BracketHigh   ScoreBracket = "high"
	BracketMedium ScoreBracket = "medium"
	BracketLow    ScoreBracket = "low"
)

type StrategyRule struct {
	Bracket  ScoreBracket  `json:"bracket" yaml:"bracket"`
	Style    LearningStyle `json:"style" yaml:"style"`
	Strategy string        `json:"strategy" yaml:"strategy"`
}

type PredictionTemplates struct {
	RecommendedActions  []string `json:"recommendedActions" yaml:"recommended_actions"`
	PotentialObstacles  []string `json:"potentialObstacles" yaml:"potential_obstacles"`
	SuccessFactors      []string `json:"successFactors" yaml:"success_factors"`
	LearningVelocity    float64  `json:"learningVelocity" yaml:"learning_velocity"`
	EstimatedTimeToGoal string   `json:"estimatedTimeToGoal" yaml:"estimated_time_to_goal"`
}

// Reference is the read-only dataset the scoring code runs against. It is
// versioned so a reloaded file can be told apart from the built-in tables.
type Reference struct {
	Version               string                   `json:"version" yaml:"version"`
	CareerPaths           []CareerPath             `json:"careerPaths" yaml:"career_paths"`
	TrendingSkills        []TrendingSkill          `json:"trendingSkills" yaml:"trending_skills"`
	DecliningSkills       []string                 `json:"decliningSkills" yaml:"declining_skills"`
	EmergingOpportunities []string                 `json:"emergingOpportunities" yaml:"emerging_opportunities"`
	InteractionStyles     map[string]LearningStyle `json:"interactionStyles" yaml:"interaction_styles"`
	GoalTopics            []GoalTopics             `json:"goalTopics" yaml:"goal_topics"`
	Strategies            []StrategyRule           `json:"strategies" yaml:"strategies"`
	DefaultStrategy       string                   `json:"defaultStrategy" yaml:"default_strategy"`
	Prediction            PredictionTemplates      `json:"prediction" yaml:"prediction"`
}

const (
	DefaultLearningVelocity    = 0.8
	DefaultEstimatedTimeToGoal = "2-3 weeks"
	builtinReferenceVersion    = "builtin-1"
)

// DefaultReference 内置参考数据
func DefaultReference() *Reference {
	return &Reference{
		Version: builtinReferenceVersion,
		CareerPaths: []CareerPath{
			{
				Title:          "Frontend Developer",
				RequiredSkills: []string{"HTML", "CSS", "JavaScript", "React", "TypeScript"},
				Keywords:       []string{"frontend", "web", "ui", "design", "react", "javascript"},
				MarketDemand:   85,
				SalaryRange:    "$70k-$120k",
				Timeline: []CareerPhase{
					{Phase: "Foundations", Duration: "2 months", Focus: []string{"HTML", "CSS", "JavaScript"}},
					{Phase: "Frameworks", Duration: "3 months", Focus: []string{"React", "TypeScript"}},
					{Phase: "Portfolio", Duration: "1 month", Focus: []string{"Projects", "Interview prep"}},
				},
			},
			{
				Title:          "Full-Stack Developer",
				RequiredSkills: []string{"JavaScript", "React", "Node.js", "SQL", "REST APIs"},
				Keywords:       []string{"fullstack", "full-stack", "web", "backend", "frontend", "node"},
				MarketDemand:   90,
				SalaryRange:    "$80k-$140k",
				Timeline: []CareerPhase{
					{Phase: "Frontend", Duration: "3 months", Focus: []string{"JavaScript", "React"}},
					{Phase: "Backend", Duration: "3 months", Focus: []string{"Node.js", "REST APIs"}},
					{Phase: "Data", Duration: "2 months", Focus: []string{"SQL", "Database Design"}},
				},
			},
			{
				Title:          "Data Scientist",
				RequiredSkills: []string{"Python", "Statistics", "Machine Learning", "SQL", "Pandas"},
				Keywords:       []string{"data", "ai", "machine learning", "analytics", "python", "statistics"},
				MarketDemand:   88,
				SalaryRange:    "$90k-$150k",
				Timeline: []CareerPhase{
					{Phase: "Programming", Duration: "2 months", Focus: []string{"Python", "Pandas"}},
					{Phase: "Statistics", Duration: "3 months", Focus: []string{"Statistics", "SQL"}},
					{Phase: "Modeling", Duration: "4 months", Focus: []string{"Machine Learning"}},
				},
			},
			{
				Title:          "DevOps Engineer",
				RequiredSkills: []string{"Linux", "Docker", "Kubernetes", "CI/CD", "Cloud"},
				Keywords:       []string{"devops", "infrastructure", "cloud", "automation", "ops"},
				MarketDemand:   82,
				SalaryRange:    "$85k-$145k",
				Timeline: []CareerPhase{
					{Phase: "Systems", Duration: "2 months", Focus: []string{"Linux", "Networking"}},
					{Phase: "Containers", Duration: "3 months", Focus: []string{"Docker", "Kubernetes"}},
					{Phase: "Delivery", Duration: "2 months", Focus: []string{"CI/CD", "Cloud"}},
				},
			},
		},
		TrendingSkills: []TrendingSkill{
			{Name: "TypeScript", Growth: 35, Demand: 85},
			{Name: "React", Growth: 25, Demand: 90},
			{Name: "Python", Growth: 30, Demand: 92},
			{Name: "Machine Learning", Growth: 45, Demand: 88},
			{Name: "Kubernetes", Growth: 40, Demand: 80},
			{Name: "Cloud", Growth: 38, Demand: 86},
			{Name: "Rust", Growth: 50, Demand: 60},
			{Name: "GraphQL", Growth: 28, Demand: 70},
		},
		DecliningSkills:       []string{"jQuery", "Flash", "AngularJS", "Perl", "CoffeeScript"},
		EmergingOpportunities: []string{"AI-assisted development", "Edge computing", "Web3 infrastructure", "Platform engineering"},
		InteractionStyles: map[string]LearningStyle{
			"video":         StyleVisual,
			"diagram":       StyleVisual,
			"infographic":   StyleVisual,
			"image":         StyleVisual,
			"audio":         StyleAuditory,
			"podcast":       StyleAuditory,
			"lecture":       StyleAuditory,
			"discussion":    StyleAuditory,
			"coding":        StyleKinesthetic,
			"exercise":      StyleKinesthetic,
			"project":       StyleKinesthetic,
			"lab":           StyleKinesthetic,
			"interactive":   StyleKinesthetic,
			"article":       StyleReading,
			"reading":       StyleReading,
			"documentation": StyleReading,
			"notes":         StyleReading,
		},
		GoalTopics: []GoalTopics{
			{Keyword: "react", Topics: []string{"React Hooks", "State Management", "Component Patterns"}},
			{Keyword: "node", Topics: []string{"Express.js", "REST APIs", "Authentication"}},
			{Keyword: "database", Topics: []string{"SQL Fundamentals", "Database Design", "Query Optimization"}},
			{Keyword: "python", Topics: []string{"Python Basics", "Data Structures", "Pandas"}},
			{Keyword: "machine learning", Topics: []string{"Linear Regression", "Model Evaluation", "Feature Engineering"}},
		},
		Strategies: []StrategyRule{
			{Bracket: BracketHigh, Style: StyleVisual, Strategy: "Advanced visual projects with architecture diagrams"},
			{Bracket: BracketHigh, Style: StyleAuditory, Strategy: "Teach-back sessions and technical talks"},
			{Bracket: BracketHigh, Style: StyleKinesthetic, Strategy: "Open-ended build challenges and code katas"},
			{Bracket: BracketHigh, Style: StyleReading, Strategy: "Deep dives into specifications and source code"},
			{Bracket: BracketMedium, Style: StyleVisual, Strategy: "Guided video tutorials with visual summaries"},
			{Bracket: BracketMedium, Style: StyleAuditory, Strategy: "Podcast-style explanations followed by discussion"},
			{Bracket: BracketMedium, Style: StyleKinesthetic, Strategy: "Structured hands-on exercises with incremental goals"},
			{Bracket: BracketMedium, Style: StyleReading, Strategy: "Curated articles with written practice questions"},
			{Bracket: BracketLow, Style: StyleVisual, Strategy: "Step-by-step visual walkthroughs of fundamentals"},
			{Bracket: BracketLow, Style: StyleAuditory, Strategy: "Short recorded explanations with frequent recaps"},
			{Bracket: BracketLow, Style: StyleKinesthetic, Strategy: "Small guided coding drills with immediate feedback"},
			{Bracket: BracketLow, Style: StyleReading, Strategy: "Beginner-friendly reading with annotated examples"},
		},
		DefaultStrategy: "Balanced mix of practice, reading and review",
		Prediction: PredictionTemplates{
			RecommendedActions: []string{
				"Practice consistently for 30 minutes daily",
				"Build a small project applying the concepts",
				"Review fundamentals before advancing",
			},
			PotentialObstacles: []string{
				"Inconsistent study schedule",
				"Gaps in prerequisite knowledge",
				"Motivation dips during harder sections",
			},
			SuccessFactors: []string{
				"Current learning streak",
				"Prior experience with related topics",
				"Clear learning goals",
			},
			LearningVelocity:    DefaultLearningVelocity,
			EstimatedTimeToGoal: DefaultEstimatedTimeToGoal,
		},
	}
}

// LoadReference reads a YAML dataset. Keys missing from the file keep the
// built-in values.
func LoadReference(path string) (*Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference %s: %w", path, err)
	}
	return ParseReference(data)
}

func ParseReference(data []byte) (*Reference, error) {
	ref := DefaultReference()
	if err := yaml.Unmarshal(data, ref); err != nil {
		return nil, fmt.Errorf("parse reference: %w", err)
	}
	ref.InteractionStyles = normalizeInteractionKeys(ref.InteractionStyles)
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	return ref, nil
}

// normalizeInteractionKeys 活动类型按小写匹配；文件中写法不规范的键覆盖内置同名键
func normalizeInteractionKeys(in map[string]LearningStyle) map[string]LearningStyle {
	out := make(map[string]LearningStyle, len(in))
	for k, v := range in {
		if key := strings.ToLower(strings.TrimSpace(k)); key == k {
			out[key] = v
		}
	}
	for k, v := range in {
		if key := strings.ToLower(strings.TrimSpace(k)); key != k && key != "" {
			out[key] = v
		}
	}
	return out
}

func (r *Reference) Validate() error {
	if len(r.CareerPaths) == 0 {
		return errors.New("reference: at least one career path is required")
	}
	for _, p := range r.CareerPaths {
		if p.Title == "" {
			return errors.New("reference: career path without title")
		}
		if p.MarketDemand < 0 || p.MarketDemand > 100 {
			return fmt.Errorf("reference: career path %q market demand %.0f out of range", p.Title, p.MarketDemand)
		}
	}
	for name, style := range r.InteractionStyles {
		if !style.Valid() {
			return fmt.Errorf("reference: interaction %q maps to unknown style %q", name, style)
		}
	}
	for _, s := range r.Strategies {
		if !s.Style.Valid() {
			return fmt.Errorf("reference: strategy for unknown style %q", s.Style)
		}
	}
	if r.Prediction.LearningVelocity < 0 {
		return errors.New("reference: learning velocity must not be negative")
	}
	return nil
}

func (r *Reference) strategyFor(bracket ScoreBracket, style LearningStyle) string {
	for _, s := range r.Strategies {
		if s.Bracket == bracket && s.Style == style {
			return s.Strategy
		}
	}
	return r.DefaultStrategy
}
