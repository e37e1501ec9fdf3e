package repository

import (
	"coder_edu_learner/internal/model"
	"context"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Append(ctx context.Context, logs []model.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&logs).Error
}

// Recent 取最近 limit 条，按时间正序返回
func (r *ActivityRepository) Recent(ctx context.Context, profileID string, limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	q := r.DB.WithContext(ctx).Where("profile_id = ?", profileID).Order("timestamp desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}
