package service

import (
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/pkg/configwatcher"
	"coder_edu_learner/pkg/logger"
	"coder_edu_learner/pkg/monitoring"
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// EngineProvider 持有当前引擎快照；参考数据重载时整体替换，进行中的请求继续使用旧快照
type EngineProvider struct {
	current atomic.Pointer[engine.Engine]
	th      engine.Thresholds
	path    string
}

func thresholdsFrom(cfg config.EngineConfig) engine.Thresholds {
	return engine.Thresholds{
		StreakCelebrationDays: cfg.StreakCelebrationDays,
		RecommendationLimit:   cfg.RecommendationLimit,
	}
}

// NewEngineProvider 未配置参考数据文件时使用内置数据
func NewEngineProvider(cfg config.EngineConfig) (*EngineProvider, error) {
	p := &EngineProvider{th: thresholdsFrom(cfg), path: cfg.ReferencePath}

	ref := engine.DefaultReference()
	if p.path != "" {
		loaded, err := engine.LoadReference(p.path)
		if err != nil {
			return nil, err
		}
		ref = loaded
	}
	p.current.Store(engine.New(ref, p.th))

	logger.Log.Info("Learner engine ready",
		zap.String("reference_version", ref.Version),
		zap.String("reference_path", p.path),
	)
	return p, nil
}

// NewStaticEngineProvider 固定引擎，测试用
func NewStaticEngineProvider(e *engine.Engine) *EngineProvider {
	p := &EngineProvider{th: e.Thresholds()}
	p.current.Store(e)
	return p
}

func (p *EngineProvider) Engine() *engine.Engine {
	return p.current.Load()
}

// Reload 重新读取参考数据；失败时保留旧引擎
func (p *EngineProvider) Reload() error {
	if p.path == "" {
		return nil
	}
	ref, err := engine.LoadReference(p.path)
	if err != nil {
		monitoring.ReferenceReloads.WithLabelValues("error").Inc()
		return err
	}
	p.current.Store(engine.New(ref, p.th))
	monitoring.ReferenceReloads.WithLabelValues("ok").Inc()
	return nil
}

func (p *EngineProvider) Watch(ctx context.Context) error {
	if p.path == "" {
		return nil
	}
	return configwatcher.Watch(ctx, p.path, configwatcher.DefaultDebounce, func() {
		if err := p.Reload(); err != nil {
			logger.Log.Error("Failed to reload reference dataset", zap.String("path", p.path), zap.Error(err))
			return
		}
		logger.Log.Info("Reference dataset reloaded", zap.String("version", p.Engine().Reference().Version))
	})
}
