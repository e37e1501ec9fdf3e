package controller

import (
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 个性化学习洞察
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/insights [get]
func (c *AnalyticsController) Insights(ctx *gin.Context) {
	insights, err := c.AnalyticsService.Insights(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, insights)
}

// @Summary 学习推荐
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Param limit query int false "返回数量"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/recommendations [get]
func (c *AnalyticsController) Recommendations(ctx *gin.Context) {
	limit := util.ParseIntDefault(ctx.Query("limit"), 0)

	recs, err := c.AnalyticsService.Recommendations(ctx.Request.Context(), ctx.Param("id"), limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, recs)
}

// @Summary 学习动力与疲劳风险
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/motivation [get]
func (c *AnalyticsController) Motivation(ctx *gin.Context) {
	report, err := c.AnalyticsService.Motivation(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 学习风格检测
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/style [get]
func (c *AnalyticsController) Style(ctx *gin.Context) {
	res, err := c.AnalyticsService.Style(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 学习模式
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/patterns [get]
func (c *AnalyticsController) Patterns(ctx *gin.Context) {
	res, err := c.AnalyticsService.Patterns(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 完成概率预测
// @Tags 学习分析
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Param request body service.PredictRequest false "主题与时间范围"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/predict [post]
func (c *AnalyticsController) Predict(ctx *gin.Context) {
	var req service.PredictRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AnalyticsService.Predict(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 自适应学习路径
// @Description 未传 goals 时使用画像中的学习目标
// @Tags 自适应学习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Param request body service.AdaptivePathRequest false "学习目标"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/adaptive-path [post]
func (c *AnalyticsController) AdaptivePath(ctx *gin.Context) {
	var req service.AdaptivePathRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AnalyticsService.AdaptivePath(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 难度调整
// @Description score >= 90 升一级，score <= 60 降一级
// @Tags 自适应学习
// @Accept json
// @Produce json
// @Param request body service.AdjustDifficultyRequest true "当前难度与得分"
// @Success 200 {object} util.Response
// @Router /api/adaptive/difficulty [post]
func (c *AnalyticsController) AdjustDifficulty(ctx *gin.Context) {
	var req service.AdjustDifficultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.AnalyticsService.AdjustDifficulty(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}
