package controller

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary 学习仪表盘
// @Description 根据请求中的画像与历史生成洞察、推荐、完成预测与成就判定，不读写存储
// @Tags 学习推荐
// @Accept json
// @Produce json
// @Param request body engine.EvaluateRequest true "画像与学习历史"
// @Success 200 {object} util.Response
// @Router /api/recommendations [post]
func (c *RecommendationController) Evaluate(ctx *gin.Context) {
	var req engine.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.RecommendationService.Evaluate(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}
