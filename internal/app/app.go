package app

import (
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/controller"
	"coder_edu_learner/internal/repository"
	"coder_edu_learner/internal/service"
	"coder_edu_learner/pkg/database"
	"coder_edu_learner/pkg/logger"
	"coder_edu_learner/pkg/monitoring"
	"coder_edu_learner/pkg/security"
	"coder_edu_learner/pkg/tracing"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Engines *service.EngineProvider

	tracer     *sdktrace.TracerProvider
	stopWatch  context.CancelFunc
	background context.Context
}

type repositories struct {
	profile     *repository.ProfileRepository
	achievement *repository.AchievementRepository
	activity    *repository.ActivityRepository
}

type services struct {
	profile        *service.ProfileService
	achievement    *service.AchievementService
	analytics      *service.AnalyticsService
	recommendation *service.RecommendationService
	career         *service.CareerService
}

type controllers struct {
	recommendation *controller.RecommendationController
	profile        *controller.ProfileController
	achievement    *controller.AchievementController
	analytics      *controller.AnalyticsController
	career         *controller.CareerController
	health         *controller.HealthController
}

func initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		profile:     repository.NewProfileRepository(db, rdb, cfg.Redis.TTL),
		achievement: repository.NewAchievementRepository(db),
		activity:    repository.NewActivityRepository(db),
	}
}

func initServices(repos *repositories, engines *service.EngineProvider, cfg *config.Config) *services {
	s := &services{}

	s.profile = service.NewProfileService(repos.profile, repos.achievement, repos.activity, cfg.Engine.HistoryWindow)
	s.achievement = service.NewAchievementService(s.profile, engines, cfg.Engine.MaxAchievementPasses)
	s.analytics = service.NewAnalyticsService(s.profile, engines)
	s.recommendation = service.NewRecommendationService(engines)
	s.career = service.NewCareerService(engines)

	return s
}

func initControllers(s *services, db *gorm.DB, rdb *redis.Client, engines *service.EngineProvider) *controllers {
	return &controllers{
		recommendation: controller.NewRecommendationController(s.recommendation),
		profile:        controller.NewProfileController(s.profile),
		achievement:    controller.NewAchievementController(s.achievement),
		analytics:      controller.NewAnalyticsController(s.analytics),
		career:         controller.NewCareerController(s.career),
		health:         controller.NewHealthController(db, rdb, engines),
	}
}

func setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewRouter 组装路由；NewApp 与控制器测试共用
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, engines *service.EngineProvider) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}

	repos := initRepositories(db, rdb, cfg)
	svcs := initServices(repos, engines, cfg)
	ctrls := initControllers(svcs, db, rdb, engines)

	router := gin.New()
	setupMiddlewares(router, cfg)
	registerRoutes(router, ctrls, cfg)
	return router
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{Config: cfg, DB: db}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	app.Redis = rdb

	engines, err := service.NewEngineProvider(cfg.Engine)
	if err != nil {
		logger.Log.Fatal("Failed to load reference dataset", zap.Error(err))
	}
	app.Engines = engines

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.Router = NewRouter(cfg, db, rdb, engines)

	app.background, app.stopWatch = context.WithCancel(context.Background())
	if cfg.Engine.WatchReference {
		if err := engines.Watch(app.background); err != nil {
			logger.Log.Error("Failed to watch reference dataset", zap.Error(err))
		}
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	a.stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
