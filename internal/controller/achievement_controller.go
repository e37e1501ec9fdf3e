package controller

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary 记录学习事件
// @Description 处理 daily-login / topic-completed / xp-gained 事件，返回新解锁的成就
// @Tags 成就系统
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Param request body service.TrackEventRequest true "事件"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/events [post]
func (c *AchievementController) TrackEvent(ctx *gin.Context) {
	var req service.TrackEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AchievementService.TrackEvent(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 成就目录
// @Tags 成就系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) Catalog(ctx *gin.Context) {
	util.Success(ctx, engine.AchievementCatalog())
}
