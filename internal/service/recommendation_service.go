package service

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/monitoring"
	"coder_edu_learner/pkg/tracing"
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const maxBundleHistory = 1000

// RecommendationService 无状态的仪表盘聚合：画像与历史由调用方随请求给出，不读写存储
type RecommendationService struct {
	Engines *EngineProvider
	Now     func() time.Time
}

func NewRecommendationService(engines *EngineProvider) *RecommendationService {
	return &RecommendationService{Engines: engines, Now: time.Now}
}

func (s *RecommendationService) Evaluate(ctx context.Context, req engine.EvaluateRequest) (engine.EvaluateResult, error) {
	_, span := tracing.StartSpan(ctx, "engine.evaluate",
		attribute.String("profile.id", req.Profile.ID),
		attribute.Int("history.size", len(req.History)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	if err = util.ValidateStruct(req.Profile); err != nil {
		return engine.EvaluateResult{}, err
	}
	switch req.Action {
	case "", engine.ActionDailyLogin, engine.ActionTopicCompleted, engine.ActionXPGained:
	default:
		err = util.NewValidationError("unknown action %q", req.Action)
		return engine.EvaluateResult{}, err
	}
	if req.Limit < 0 {
		err = util.NewValidationError("limit must not be negative")
		return engine.EvaluateResult{}, err
	}
	if len(req.History) > maxBundleHistory {
		err = util.NewValidationError("history exceeds %d records", maxBundleHistory)
		return engine.EvaluateResult{}, err
	}

	defer monitoring.ObserveEngine("evaluate")()
	res := s.Engines.Engine().Evaluate(req, s.Now())
	recordInsights(res.Insights)
	return res, nil
}
