package service

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/monitoring"
)

type CareerService struct {
	Engines *EngineProvider
}

func NewCareerService(engines *EngineProvider) *CareerService {
	return &CareerService{Engines: engines}
}

type CareerPredictRequest struct {
	Skills    []string `json:"skills" validate:"max=200,dive,max=100"`
	Interests []string `json:"interests" validate:"max=200,dive,max=100"`
	Timeframe string   `json:"timeframe" validate:"max=50"`
}

type TrendsRequest struct {
	Skills []string `json:"skills" validate:"max=200,dive,max=100"`
}

func (s *CareerService) PredictCareer(req CareerPredictRequest) (engine.CareerPrediction, error) {
	if err := util.ValidateStruct(req); err != nil {
		return engine.CareerPrediction{}, err
	}
	defer monitoring.ObserveEngine("career_predict")()
	return s.Engines.Engine().PredictCareerPath(req.Skills, req.Interests, req.Timeframe), nil
}

func (s *CareerService) AnalyzeTrends(req TrendsRequest) (engine.TrendAnalysis, error) {
	if err := util.ValidateStruct(req); err != nil {
		return engine.TrendAnalysis{}, err
	}
	defer monitoring.ObserveEngine("career_trends")()
	return s.Engines.Engine().AnalyzeIndustryTrends(req.Skills), nil
}
