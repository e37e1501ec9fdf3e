package service

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/model"
	"coder_edu_learner/internal/repository"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/monitoring"
	"coder_edu_learner/pkg/tracing"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const defaultHistoryWindow = 50

type ProfileService struct {
	ProfileRepo     *repository.ProfileRepository
	AchievementRepo *repository.AchievementRepository
	ActivityRepo    *repository.ActivityRepository
	HistoryWindow   int
	Now             func() time.Time
}

func NewProfileService(
	profileRepo *repository.ProfileRepository,
	achievementRepo *repository.AchievementRepository,
	activityRepo *repository.ActivityRepository,
	historyWindow int,
) *ProfileService {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &ProfileService{
		ProfileRepo:     profileRepo,
		AchievementRepo: achievementRepo,
		ActivityRepo:    activityRepo,
		HistoryWindow:   historyWindow,
		Now:             time.Now,
	}
}

type CreateProfileRequest struct {
	ID            string               `json:"id" validate:"omitempty,max=64"`
	Name          string               `json:"name" validate:"max=100"`
	LearningStyle engine.LearningStyle `json:"learningStyle" validate:"omitempty,oneof=visual auditory kinesthetic reading"`
	SkillLevel    engine.SkillLevel    `json:"skillLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	PreferredPace engine.Pace          `json:"preferredPace" validate:"omitempty,oneof=slow medium fast"`
	Interests     []string             `json:"interests"`
	Goals         []string             `json:"goals"`
	WeakAreas     []string             `json:"weakAreas"`
}

// CreateProfile 以默认画像为底，覆盖请求中给出的字段
func (s *ProfileService) CreateProfile(ctx context.Context, req CreateProfileRequest) (engine.Profile, error) {
	if err := util.ValidateStruct(req); err != nil {
		return engine.Profile{}, err
	}

	id := req.ID
	if id == "" {
		id = model.GenerateUUID()
	}
	exists, err := s.ProfileRepo.Exists(ctx, id)
	if err != nil {
		return engine.Profile{}, err
	}
	if exists {
		return engine.Profile{}, util.ErrProfileExists
	}

	p := engine.NewProfile(id, req.Name)
	if req.LearningStyle != "" {
		p.LearningStyle = req.LearningStyle
	}
	if req.SkillLevel != "" {
		p.SkillLevel = req.SkillLevel
	}
	if req.PreferredPace != "" {
		p.PreferredPace = req.PreferredPace
	}
	if req.Interests != nil {
		p.Interests = req.Interests
	}
	if req.Goals != nil {
		p.Goals = req.Goals
	}
	if req.WeakAreas != nil {
		p.WeakAreas = req.WeakAreas
	}

	if err := s.ProfileRepo.Create(ctx, model.FromEngineProfile(p)); err != nil {
		return engine.Profile{}, err
	}
	return p, nil
}

// GetProfile 读取画像并附带成就流水
func (s *ProfileService) GetProfile(ctx context.Context, id string) (engine.Profile, error) {
	m, err := s.ProfileRepo.FindByID(ctx, id)
	if err != nil {
		return engine.Profile{}, err
	}
	records, err := s.AchievementRepo.FindByProfileID(ctx, id)
	if err != nil {
		return engine.Profile{}, fmt.Errorf("load achievements for %s: %w", id, err)
	}
	return m.ToEngine(records), nil
}

// UpdateProfile 整体替换画像；成就只能由事件写入，请求中的成就被忽略
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, p engine.Profile) (engine.Profile, error) {
	if p.ID == "" {
		p.ID = id
	}
	if p.ID != id {
		return engine.Profile{}, util.ErrProfileIDMismatch
	}
	if err := util.ValidateStruct(p); err != nil {
		return engine.Profile{}, err
	}
	if _, err := s.ProfileRepo.FindByID(ctx, id); err != nil {
		return engine.Profile{}, err
	}

	p = engine.NormalizeProfile(p)
	if err := s.ProfileRepo.Save(ctx, model.FromEngineProfile(p)); err != nil {
		return engine.Profile{}, err
	}
	return s.GetProfile(ctx, id)
}

// History 最近 HistoryWindow 条活动，时间正序
func (s *ProfileService) History(ctx context.Context, id string) ([]engine.ActivityRecord, error) {
	logs, err := s.ActivityRepo.Recent(ctx, id, s.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("load history for %s: %w", id, err)
	}
	out := make([]engine.ActivityRecord, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.ToEngine())
	}
	return out, nil
}

// RecordActivities 追加活动并按最新窗口重算画像上的学习模式
func (s *ProfileService) RecordActivities(ctx context.Context, id string, records []engine.ActivityRecord) ([]engine.LearningPattern, error) {
	ctx, span := tracing.StartSpan(ctx, "profile.record_activities",
		attribute.String("profile.id", id),
		attribute.Int("activity.count", len(records)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()
	defer monitoring.ObserveEngine("record_activities")()

	if len(records) == 0 {
		err = util.NewValidationError("at least one activity is required")
		return nil, err
	}

	var p engine.Profile
	if p, err = s.GetProfile(ctx, id); err != nil {
		return nil, err
	}

	now := s.Now()
	logs := make([]model.ActivityLog, 0, len(records))
	for i, r := range records {
		if r.Type == "" {
			err = util.NewValidationError("activities[%d].type is required", i)
			return nil, err
		}
		if r.Timestamp.IsZero() {
			r.Timestamp = now
		}
		logs = append(logs, model.NewActivityLog(id, r))
	}
	if err = s.ActivityRepo.Append(ctx, logs); err != nil {
		return nil, err
	}

	var history []engine.ActivityRecord
	if history, err = s.History(ctx, id); err != nil {
		return nil, err
	}
	p.LearningPatterns = engine.AnalyzePatterns(history)
	if err = s.ProfileRepo.Save(ctx, model.FromEngineProfile(p)); err != nil {
		return nil, err
	}
	return p.LearningPatterns, nil
}
