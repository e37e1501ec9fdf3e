package repository

import (
	"coder_edu_learner/internal/model"
	"context"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByProfileID(ctx context.Context, profileID string) ([]model.AchievementRecord, error) {
	var records []model.AchievementRecord
	err := r.DB.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("unlocked_at asc, id asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AchievementRepository) CountByProfileID(ctx context.Context, profileID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.AchievementRecord{}).Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}
