package service

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/model"
	"coder_edu_learner/internal/repository"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/logger"
	"coder_edu_learner/pkg/monitoring"
	"coder_edu_learner/pkg/tracing"
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const defaultMaxAchievementPasses = 3

type AchievementService struct {
	Profiles  *ProfileService
	Engines   *EngineProvider
	MaxPasses int
	Now       func() time.Time
}

func NewAchievementService(profiles *ProfileService, engines *EngineProvider, maxPasses int) *AchievementService {
	if maxPasses < 1 {
		maxPasses = defaultMaxAchievementPasses
	}
	return &AchievementService{
		Profiles:  profiles,
		Engines:   engines,
		MaxPasses: maxPasses,
		Now:       time.Now,
	}
}

type TrackEventRequest struct {
	Action    engine.Action    `json:"action" validate:"required,oneof=daily-login topic-completed xp-gained"`
	EventData engine.EventData `json:"eventData"`
}

type TrackEventResult struct {
	Unlocked []engine.Achievement `json:"unlocked"`
	Profile  engine.Profile       `json:"profile"`
}

// TrackEvent 处理一次学习事件：在画像行锁内更新画像、判定成就、发放经验并落库。
// 成就奖励的经验可能继续触发经验类成就，最多重复判定 MaxPasses 轮。
// 返回值只包含本次实际写入流水的成就。
func (s *AchievementService) TrackEvent(ctx context.Context, id string, req TrackEventRequest) (TrackEventResult, error) {
	ctx, span := tracing.StartSpan(ctx, "achievement.track_event",
		attribute.String("profile.id", id),
		attribute.String("event.action", string(req.Action)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()
	defer monitoring.ObserveEngine("track_event")()

	if err = util.ValidateStruct(req); err != nil {
		return TrackEventResult{}, err
	}
	if req.EventData.Difficulty != "" && !req.EventData.Difficulty.Valid() {
		err = util.NewValidationError("eventData.difficulty %q is not a skill level", req.EventData.Difficulty)
		return TrackEventResult{}, err
	}

	eng := s.Engines.Engine()
	now := s.Now()

	var p engine.Profile
	var candidates []engine.Achievement
	var inserted []model.AchievementRecord
	inserted, err = s.Profiles.ProfileRepo.UpdateLocked(ctx, id, func(cur *repository.LockedProfile) (*model.LearnerProfile, []model.AchievementRecord, error) {
		p = engine.ApplyEvent(cur.Profile.ToEngine(cur.Achievements), req.Action, req.EventData)
		candidates = eng.CheckAchievements(p, req.Action, req.EventData, now)
		p = engine.ApplyAchievements(p, candidates)

		for pass := 1; pass < s.MaxPasses && len(candidates) > 0; pass++ {
			more := eng.CheckAchievements(p, engine.ActionXPGained, engine.EventData{}, now)
			if len(more) == 0 {
				break
			}
			p = engine.ApplyAchievements(p, more)
			candidates = append(candidates, more...)
		}

		records := make([]model.AchievementRecord, 0, len(candidates))
		for _, a := range candidates {
			records = append(records, model.NewAchievementRecord(id, a))
		}
		return model.FromEngineProfile(p), records, nil
	})
	if err != nil {
		return TrackEventResult{}, err
	}

	written := make(map[string]bool, len(inserted))
	for _, r := range inserted {
		written[r.AchievementID] = true
	}
	unlocked := make([]engine.Achievement, 0, len(candidates))
	for _, a := range candidates {
		if written[a.ID] {
			unlocked = append(unlocked, a)
		}
	}

	for _, a := range unlocked {
		monitoring.AchievementsUnlocked.WithLabelValues(a.ID).Inc()
		logger.Log.Info("Achievement unlocked",
			zap.String("profile_id", id),
			zap.String("achievement", a.ID),
			zap.Int("xp_reward", a.XPReward),
		)
	}
	span.SetAttributes(attribute.Int("achievement.unlocked", len(unlocked)))

	return TrackEventResult{Unlocked: unlocked, Profile: p}, nil
}
