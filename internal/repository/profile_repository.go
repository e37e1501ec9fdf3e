package repository

import (
	"coder_edu_learner/internal/model"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultProfileCacheTTL = 5 * time.Minute

type ProfileRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	TTL   time.Duration
}

// NewProfileRepository rdb 可为 nil，此时直接读库
func NewProfileRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *ProfileRepository {
	if ttl <= 0 {
		ttl = defaultProfileCacheTTL
	}
	return &ProfileRepository{DB: db, Redis: rdb, TTL: ttl}
}

func profileCacheKey(id string) string {
	return util.ProfileCacheKeyPrefix + id
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*model.LearnerProfile, error) {
	if cached := r.getCached(ctx, id); cached != nil {
		return cached, nil
	}

	var p model.LearnerProfile
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile %s: %w", id, err)
	}

	r.setCached(ctx, &p)
	return &p, nil
}

func (r *ProfileRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&model.LearnerProfile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *model.LearnerProfile) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create profile %s: %w", p.ID, err)
	}
	return nil
}

// Save 按主键 upsert
func (r *ProfileRepository) Save(ctx context.Context, p *model.LearnerProfile) error {
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error; err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	r.Invalidate(ctx, p.ID)
	return nil
}

// ProfileMutation 基于加锁读取的画像与已有成就，返回新画像与待写入的成就
type ProfileMutation func(current *LockedProfile) (*model.LearnerProfile, []model.AchievementRecord, error)

type LockedProfile struct {
	Profile      *model.LearnerProfile
	Achievements []model.AchievementRecord
}

// UpdateLocked 在事务内对画像行加写锁后执行 fn，返回实际写入的成就。
// 唯一索引冲突被忽略的成就不会出现在返回值中。
func (r *ProfileRepository) UpdateLocked(ctx context.Context, id string, fn ProfileMutation) ([]model.AchievementRecord, error) {
	var inserted []model.AchievementRecord
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.LearnerProfile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrProfileNotFound
		}
		if err != nil {
			return err
		}

		var owned []model.AchievementRecord
		if err := tx.Where("profile_id = ?", id).Order("unlocked_at asc, id asc").Find(&owned).Error; err != nil {
			return err
		}

		next, records, err := fn(&LockedProfile{Profile: &current, Achievements: owned})
		if err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(next).Error; err != nil {
			return err
		}
		for i := range records {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&records[i])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				inserted = append(inserted, records[i])
			}
		}
		return nil
	})
	if errors.Is(err, util.ErrProfileNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("update profile %s: %w", id, err)
	}

	r.Invalidate(ctx, id)
	return inserted, nil
}

func (r *ProfileRepository) Invalidate(ctx context.Context, id string) {
	if r.Redis == nil {
		return
	}
	if err := r.Redis.Del(ctx, profileCacheKey(id)).Err(); err != nil {
		logger.Log.Warn("profile cache invalidate failed", zap.String("profile_id", id), zap.Error(err))
	}
}

func (r *ProfileRepository) getCached(ctx context.Context, id string) *model.LearnerProfile {
	if r.Redis == nil {
		return nil
	}
	data, err := r.Redis.Get(ctx, profileCacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("profile cache read failed", zap.String("profile_id", id), zap.Error(err))
		}
		return nil
	}
	var p model.LearnerProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

func (r *ProfileRepository) setCached(ctx context.Context, p *model.LearnerProfile) {
	if r.Redis == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.Redis.Set(ctx, profileCacheKey(p.ID), data, r.TTL).Err(); err != nil {
		logger.Log.Warn("profile cache write failed", zap.String("profile_id", p.ID), zap.Error(err))
	}
}
