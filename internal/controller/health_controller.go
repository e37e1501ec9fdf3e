package controller

import (
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Engines *service.EngineProvider
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, engines *service.EngineProvider) *HealthController {
	return &HealthController{DB: db, Redis: rdb, Engines: engines}
}

// @Summary 健康检查
// @Description 检查数据库、缓存与参考数据状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	components := gin.H{"database": "up", "cache": "disabled"}
	if c.Redis != nil {
		components["cache"] = "up"
		if err := c.Redis.Ping(pingCtx).Err(); err != nil {
			// 缓存不可用时仍可直接读库
			components["cache"] = "down"
		}
	}

	util.Success(ctx, gin.H{
		"status":           "ok",
		"components":       components,
		"referenceVersion": c.Engines.Engine().Reference().Version,
	})
}
