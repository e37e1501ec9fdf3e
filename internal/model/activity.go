package model

import (
	"coder_edu_learner/internal/engine"
	"time"
)

type ActivityLog struct {
	UUIDBase
	ProfileID        string    `gorm:"size:64;not null;index:idx_activity_profile_time" json:"profileId"`
	Timestamp        time.Time `gorm:"not null;index:idx_activity_profile_time" json:"timestamp"`
	Type             string    `gorm:"size:50;not null" json:"type"`
	TopicType        string    `gorm:"size:100" json:"topicType"`
	EngagementScore  *float64  `json:"engagementScore,omitempty"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	CompletionRate   float64   `json:"completionRate"`
	EngagementLevel  float64   `json:"engagementLevel"`
	PlannedDuration  float64   `json:"plannedDuration"`
	ActualDuration   float64   `json:"actualDuration"`
	PerformanceScore float64   `json:"performanceScore"`
}

func (ActivityLog) TableName() string {
	return "learner_activities"
}

func NewActivityLog(profileID string, r engine.ActivityRecord) ActivityLog {
	return ActivityLog{
		ProfileID:        profileID,
		Timestamp:        r.Timestamp,
		Type:             r.Type,
		TopicType:        r.TopicType,
		EngagementScore:  r.EngagementScore,
		Completed:        r.Completed,
		CompletionRate:   r.CompletionRate,
		EngagementLevel:  r.EngagementLevel,
		PlannedDuration:  r.PlannedDuration,
		ActualDuration:   r.ActualDuration,
		PerformanceScore: r.PerformanceScore,
	}
}

func (a ActivityLog) ToEngine() engine.ActivityRecord {
	return engine.ActivityRecord{
		Timestamp:        a.Timestamp,
		Type:             a.Type,
		TopicType:        a.TopicType,
		EngagementScore:  a.EngagementScore,
		Completed:        a.Completed,
		CompletionRate:   a.CompletionRate,
		EngagementLevel:  a.EngagementLevel,
		PlannedDuration:  a.PlannedDuration,
		ActualDuration:   a.ActualDuration,
		PerformanceScore: a.PerformanceScore,
	}
}
