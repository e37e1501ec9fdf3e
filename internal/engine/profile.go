package engine

import (
	"strings"
	"time"
)

type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReading     LearningStyle = "reading"
)

// LearningStyles 规范顺序，同分时靠前者优先
var LearningStyles = []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading}

func (s LearningStyle) Valid() bool {
	for _, v := range LearningStyles {
		if s == v {
			return true
		}
	}
	return false
}

type SkillLevel string

const (
	Beginner     SkillLevel = "beginner"
	Intermediate SkillLevel = "intermediate"
	Advanced     SkillLevel = "advanced"
)

// SkillLevels is the difficulty ladder, lowest tier first.
var SkillLevels = []SkillLevel{Beginner, Intermediate, Advanced}

func (l SkillLevel) Valid() bool {
	return l.rank() >= 0
}

func (l SkillLevel) rank() int {
	for i, v := range SkillLevels {
		if l == v {
			return i
		}
	}
	return -1
}

// Next 返回上一级难度，advanced 保持不变
func (l SkillLevel) Next() SkillLevel {
	r := l.rank()
	if r < 0 {
		return Beginner
	}
	if r+1 >= len(SkillLevels) {
		return SkillLevels[len(SkillLevels)-1]
	}
	return SkillLevels[r+1]
}

// Previous 返回下一级难度，beginner 保持不变
func (l SkillLevel) Previous() SkillLevel {
	r := l.rank()
	if r <= 0 {
		return Beginner
	}
	return SkillLevels[r-1]
}

type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceMedium Pace = "medium"
	PaceFast   Pace = "fast"
)

func (p Pace) Valid() bool {
	return p == PaceSlow || p == PaceMedium || p == PaceFast
}

type AchievementCategory string

const (
	CategoryLearning  AchievementCategory = "learning"
	CategoryStreak    AchievementCategory = "streak"
	CategorySkill     AchievementCategory = "skill"
	CategoryCommunity AchievementCategory = "community"
	CategoryProject   AchievementCategory = "project"
)

type Achievement struct {
	ID          string              `json:"id" yaml:"id"`
	Title       string              `json:"title" yaml:"title"`
	Description string              `json:"description" yaml:"description"`
	Icon        string              `json:"icon" yaml:"icon"`
	UnlockedAt  time.Time           `json:"unlockedAt" yaml:"-"`
	XPReward    int                 `json:"xpReward" yaml:"xp_reward"`
	Category    AchievementCategory `json:"category" yaml:"category"`
}

type LearningPattern struct {
	TimeOfDay       string  `json:"timeOfDay"`
	Duration        float64 `json:"duration"`
	TopicType       string  `json:"topicType"`
	SuccessRate     float64 `json:"successRate"`
	EngagementLevel float64 `json:"engagementLevel"`
	CompletionRate  float64 `json:"completionRate"`
}

// Profile is the durable learner record. The engine only ever reads it;
// callers load it before and persist it after each tracked event.
type Profile struct {
	ID                  string            `json:"id" validate:"required"`
	Name                string            `json:"name"`
	LearningStyle       LearningStyle     `json:"learningStyle" validate:"omitempty,oneof=visual auditory kinesthetic reading"`
	SkillLevel          SkillLevel        `json:"skillLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	Interests           []string          `json:"interests"`
	Goals               []string          `json:"goals"`
	WeakAreas           []string          `json:"weakAreas"`
	Strengths           []string          `json:"strengths"`
	PreferredPace       Pace              `json:"preferredPace" validate:"omitempty,oneof=slow medium fast"`
	OptimalLearningTime []string          `json:"optimalLearningTime"`
	CompletedTopics     []string          `json:"completedTopics"`
	CurrentStreak       int               `json:"currentStreak" validate:"gte=0"`
	TotalXP             int               `json:"totalXP" validate:"gte=0"`
	Level               int               `json:"level" validate:"gte=0"`
	Achievements        []Achievement     `json:"achievements"`
	LearningPatterns    []LearningPattern `json:"learningPatterns"`
}

const (
	XPPerLevel                 = 200
	DefaultOptimalLearningTime = "09:00"
)

// NewProfile 注册时创建默认画像
func NewProfile(id, name string) Profile {
	return Profile{
		ID:                  id,
		Name:                name,
		LearningStyle:       StyleVisual,
		SkillLevel:          Beginner,
		Interests:           []string{},
		Goals:               []string{},
		WeakAreas:           []string{},
		Strengths:           []string{},
		PreferredPace:       PaceMedium,
		OptimalLearningTime: []string{DefaultOptimalLearningTime},
		CompletedTopics:     []string{},
		Level:               1,
		Achievements:        []Achievement{},
		LearningPatterns:    []LearningPattern{},
	}
}

// LevelForXP 每 XPPerLevel 经验升一级，最低 1 级
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// NormalizeProfile fills defaults for optional or out-of-range fields and
// returns a copy; slices are cloned so the result never aliases the input.
func NormalizeProfile(p Profile) Profile {
	out := p.Clone()
	if !out.LearningStyle.Valid() {
		out.LearningStyle = StyleVisual
	}
	if !out.SkillLevel.Valid() {
		out.SkillLevel = Beginner
	}
	if !out.PreferredPace.Valid() {
		out.PreferredPace = PaceMedium
	}
	if out.CurrentStreak < 0 {
		out.CurrentStreak = 0
	}
	if out.TotalXP < 0 {
		out.TotalXP = 0
	}
	if out.Level < 1 {
		out.Level = 1
	}
	return out
}

func (p Profile) Clone() Profile {
	out := p
	out.Interests = cloneStrings(p.Interests)
	out.Goals = cloneStrings(p.Goals)
	out.WeakAreas = cloneStrings(p.WeakAreas)
	out.Strengths = cloneStrings(p.Strengths)
	out.OptimalLearningTime = cloneStrings(p.OptimalLearningTime)
	out.CompletedTopics = cloneStrings(p.CompletedTopics)
	if p.Achievements != nil {
		out.Achievements = append([]Achievement(nil), p.Achievements...)
	}
	if p.LearningPatterns != nil {
		out.LearningPatterns = append([]LearningPattern(nil), p.LearningPatterns...)
	}
	return out
}

func (p Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// matches reports case-insensitive substring containment in either direction.
// "react" also matches "reaction"; callers rely on that.
func matches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func matchesAny(s string, list []string) bool {
	for _, v := range list {
		if matches(s, v) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func lastN(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}
