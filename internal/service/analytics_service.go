package service

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/monitoring"
	"context"
)

// AnalyticsService 面向单个学习者的分析接口，画像与历史从存储读取
type AnalyticsService struct {
	Profiles *ProfileService
	Engines  *EngineProvider
}

func NewAnalyticsService(profiles *ProfileService, engines *EngineProvider) *AnalyticsService {
	return &AnalyticsService{Profiles: profiles, Engines: engines}
}

func recordInsights(insights []engine.Insight) {
	for _, in := range insights {
		monitoring.InsightsGenerated.WithLabelValues(string(in.Type)).Inc()
	}
}

func (s *AnalyticsService) Insights(ctx context.Context, id string) ([]engine.Insight, error) {
	p, err := s.Profiles.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	defer monitoring.ObserveEngine("insights")()

	insights := s.Engines.Engine().GenerateInsights(p)
	recordInsights(insights)
	return insights, nil
}

// Recommendations limit <= 0 时使用配置的默认条数
func (s *AnalyticsService) Recommendations(ctx context.Context, id string, limit int) ([]engine.Recommendation, error) {
	p, err := s.Profiles.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.Profiles.History(ctx, id)
	if err != nil {
		return nil, err
	}
	defer monitoring.ObserveEngine("recommendations")()

	return s.Engines.Engine().ComposeRecommendations(p, history, limit), nil
}

func (s *AnalyticsService) Motivation(ctx context.Context, id string) (engine.MotivationReport, error) {
	history, err := s.loadHistory(ctx, id)
	if err != nil {
		return engine.MotivationReport{}, err
	}
	return engine.TrackMotivationLevel(history), nil
}

type StyleResult struct {
	Current  engine.LearningStyle `json:"current"`
	Detected engine.LearningStyle `json:"detected"`
	Sessions int                  `json:"sessions"`
}

// Style 历史为空时检测结果沿用画像上的学习风格
func (s *AnalyticsService) Style(ctx context.Context, id string) (StyleResult, error) {
	p, err := s.Profiles.GetProfile(ctx, id)
	if err != nil {
		return StyleResult{}, err
	}
	history, err := s.Profiles.History(ctx, id)
	if err != nil {
		return StyleResult{}, err
	}

	res := StyleResult{Current: p.LearningStyle, Detected: p.LearningStyle, Sessions: len(history)}
	if len(history) > 0 {
		res.Detected = s.Engines.Engine().DetectLearningStyle(history)
	}
	return res, nil
}

type PatternsResult struct {
	Patterns []engine.LearningPattern `json:"patterns"`
	Best     *engine.LearningPattern  `json:"best,omitempty"`
}

func (s *AnalyticsService) Patterns(ctx context.Context, id string) (PatternsResult, error) {
	history, err := s.loadHistory(ctx, id)
	if err != nil {
		return PatternsResult{}, err
	}

	res := PatternsResult{Patterns: engine.AnalyzePatterns(history)}
	if best, ok := engine.BestPattern(res.Patterns); ok {
		res.Best = &best
	}
	return res, nil
}

type PredictRequest struct {
	Topic     string `json:"topic" validate:"max=100"`
	Timeframe string `json:"timeframe" validate:"max=50"`
}

// Predict 未指定主题时取第一个学习目标
func (s *AnalyticsService) Predict(ctx context.Context, id string, req PredictRequest) (engine.PredictiveAnalysis, error) {
	if err := util.ValidateStruct(req); err != nil {
		return engine.PredictiveAnalysis{}, err
	}
	p, err := s.Profiles.GetProfile(ctx, id)
	if err != nil {
		return engine.PredictiveAnalysis{}, err
	}

	topic := req.Topic
	if topic == "" && len(p.Goals) > 0 {
		topic = p.Goals[0]
	}
	if topic == "" {
		topic = engine.DefaultTopicType
	}
	defer monitoring.ObserveEngine("predict")()
	return s.Engines.Engine().PredictLearningOutcome(p, topic, req.Timeframe), nil
}

type AdaptivePathRequest struct {
	Goals []string `json:"goals"`
}

// AdaptivePath 请求未给出目标时使用画像上的学习目标
func (s *AnalyticsService) AdaptivePath(ctx context.Context, id string, req AdaptivePathRequest) (engine.AdaptivePath, error) {
	p, err := s.Profiles.GetProfile(ctx, id)
	if err != nil {
		return engine.AdaptivePath{}, err
	}
	history, err := s.Profiles.History(ctx, id)
	if err != nil {
		return engine.AdaptivePath{}, err
	}

	goals := req.Goals
	if len(goals) == 0 {
		goals = p.Goals
	}
	defer monitoring.ObserveEngine("adaptive_path")()
	return s.Engines.Engine().AdaptLearningPath(p, history, goals), nil
}

type AdjustDifficultyRequest struct {
	Current engine.SkillLevel `json:"current" validate:"required,oneof=beginner intermediate advanced"`
	Score   *float64          `json:"score" validate:"required,gte=0,lte=100"`
}

type AdjustDifficultyResult struct {
	Current  engine.SkillLevel `json:"current"`
	Adjusted engine.SkillLevel `json:"adjusted"`
	Changed  bool              `json:"changed"`
}

// AdjustDifficulty 无状态，不读取画像
func (s *AnalyticsService) AdjustDifficulty(req AdjustDifficultyRequest) (AdjustDifficultyResult, error) {
	if err := util.ValidateStruct(req); err != nil {
		return AdjustDifficultyResult{}, err
	}
	adjusted := engine.AdjustDifficulty(req.Current, *req.Score)
	return AdjustDifficultyResult{
		Current:  req.Current,
		Adjusted: adjusted,
		Changed:  adjusted != req.Current,
	}, nil
}

func (s *AnalyticsService) loadHistory(ctx context.Context, id string) ([]engine.ActivityRecord, error) {
	if _, err := s.Profiles.ProfileRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.Profiles.History(ctx, id)
}
