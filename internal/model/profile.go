package model

import (
	"coder_edu_learner/internal/engine"
	"time"

	"gorm.io/datatypes"
)

// LearnerProfile 学习者画像持久化结构，列表字段以 JSON 列存储
type LearnerProfile struct {
	ID                  string                                      `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt           time.Time                                   `json:"createdAt"`
	UpdatedAt           time.Time                                   `json:"updatedAt"`
	Name                string                                      `gorm:"size:100" json:"name"`
	LearningStyle       string                                      `gorm:"size:20" json:"learningStyle"`
	SkillLevel          string                                      `gorm:"size:20" json:"skillLevel"`
	PreferredPace       string                                      `gorm:"size:10" json:"preferredPace"`
	Interests           datatypes.JSONSlice[string]                 `json:"interests"`
	Goals               datatypes.JSONSlice[string]                 `json:"goals"`
	WeakAreas           datatypes.JSONSlice[string]                 `json:"weakAreas"`
	Strengths           datatypes.JSONSlice[string]                 `json:"strengths"`
	OptimalLearningTime datatypes.JSONSlice[string]                 `json:"optimalLearningTime"`
	CompletedTopics     datatypes.JSONSlice[string]                 `json:"completedTopics"`
	LearningPatterns    datatypes.JSONSlice[engine.LearningPattern] `json:"learningPatterns"`
	CurrentStreak       int                                         `gorm:"default:0" json:"currentStreak"`
	TotalXP             int                                         `gorm:"default:0;index" json:"totalXP"`
	Level               int                                         `gorm:"default:1" json:"level"`
}

func (LearnerProfile) TableName() string {
	return "learner_profiles"
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// FromEngineProfile 成就单独存放在 learner_achievements，不写入画像行
func FromEngineProfile(p engine.Profile) *LearnerProfile {
	return &LearnerProfile{
		ID:                  p.ID,
		Name:                p.Name,
		LearningStyle:       string(p.LearningStyle),
		SkillLevel:          string(p.SkillLevel),
		PreferredPace:       string(p.PreferredPace),
		Interests:           nonNil(p.Interests),
		Goals:               nonNil(p.Goals),
		WeakAreas:           nonNil(p.WeakAreas),
		Strengths:           nonNil(p.Strengths),
		OptimalLearningTime: nonNil(p.OptimalLearningTime),
		CompletedTopics:     nonNil(p.CompletedTopics),
		LearningPatterns:    nonNil(p.LearningPatterns),
		CurrentStreak:       p.CurrentStreak,
		TotalXP:             p.TotalXP,
		Level:               p.Level,
	}
}

func (m *LearnerProfile) ToEngine(achievements []AchievementRecord) engine.Profile {
	p := engine.Profile{
		ID:                  m.ID,
		Name:                m.Name,
		LearningStyle:       engine.LearningStyle(m.LearningStyle),
		SkillLevel:          engine.SkillLevel(m.SkillLevel),
		PreferredPace:       engine.Pace(m.PreferredPace),
		Interests:           nonNil([]string(m.Interests)),
		Goals:               nonNil([]string(m.Goals)),
		WeakAreas:           nonNil([]string(m.WeakAreas)),
		Strengths:           nonNil([]string(m.Strengths)),
		OptimalLearningTime: nonNil([]string(m.OptimalLearningTime)),
		CompletedTopics:     nonNil([]string(m.CompletedTopics)),
		LearningPatterns:    nonNil([]engine.LearningPattern(m.LearningPatterns)),
		CurrentStreak:       m.CurrentStreak,
		TotalXP:             m.TotalXP,
		Level:               m.Level,
		Achievements:        make([]engine.Achievement, 0, len(achievements)),
	}
	for _, a := range achievements {
		p.Achievements = append(p.Achievements, a.ToEngine())
	}
	return p
}
