package app

import (
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/middleware"
	"coder_edu_learner/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	router.Use(middleware.RequestID(), middleware.RequestLogger())

	// 1. 公共路由(无需登录)
	registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT))
	{
		authGroup.POST("/recommendations", c.recommendation.Evaluate)
		authGroup.POST("/profiles", c.profile.CreateProfile)

		// 画像相关接口，令牌主体必须与 :id 一致
		registerProfileRoutes(authGroup.Group("/profiles/:id", middleware.ProfileOwner("id")), c)
	}
}

func registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/achievements", c.achievement.Catalog)
		public.POST("/adaptive/difficulty", c.analytics.AdjustDifficulty)
		public.POST("/career/predict", c.career.Predict)
		public.POST("/career/trends", c.career.Trends)
	}
}

func registerProfileRoutes(profile *gin.RouterGroup, c *controllers) {
	profile.GET("", c.profile.GetProfile)
	profile.PUT("", c.profile.UpdateProfile)
	profile.POST("/activities", c.profile.RecordActivities)
	profile.GET("/activities", c.profile.History)
	profile.POST("/events", c.achievement.TrackEvent)

	profile.GET("/insights", c.analytics.Insights)
	profile.GET("/recommendations", c.analytics.Recommendations)
	profile.GET("/motivation", c.analytics.Motivation)
	profile.GET("/style", c.analytics.Style)
	profile.GET("/patterns", c.analytics.Patterns)
	profile.POST("/predict", c.analytics.Predict)
	profile.POST("/adaptive-path", c.analytics.AdaptivePath)
}
