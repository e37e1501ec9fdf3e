package model

import (
	"coder_edu_learner/internal/engine"
	"time"
)

// AchievementRecord 成就流水，(profile_id, achievement_id) 唯一
type AchievementRecord struct {
	BaseModel
	ProfileID     string    `gorm:"size:64;not null;uniqueIndex:idx_profile_achievement" json:"profileId"`
	AchievementID string    `gorm:"size:64;not null;uniqueIndex:idx_profile_achievement" json:"achievementId"`
	Title         string    `gorm:"size:100;not null" json:"title"`
	Description   string    `gorm:"size:255" json:"description"`
	Icon          string    `gorm:"size:32" json:"icon"`
	XPReward      int       `gorm:"default:0" json:"xpReward"`
	Category      string    `gorm:"size:20" json:"category"`
	UnlockedAt    time.Time `gorm:"index" json:"unlockedAt"`
}

func (AchievementRecord) TableName() string {
	return "learner_achievements"
}

func NewAchievementRecord(profileID string, a engine.Achievement) AchievementRecord {
	return AchievementRecord{
		ProfileID:     profileID,
		AchievementID: a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Icon:          a.Icon,
		XPReward:      a.XPReward,
		Category:      string(a.Category),
		UnlockedAt:    a.UnlockedAt,
	}
}

func (r AchievementRecord) ToEngine() engine.Achievement {
	return engine.Achievement{
		ID:          r.AchievementID,
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		UnlockedAt:  r.UnlockedAt,
		XPReward:    r.XPReward,
		Category:    engine.AchievementCategory(r.Category),
	}
}
