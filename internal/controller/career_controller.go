package controller

import (
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	CareerService *service.CareerService
}

func NewCareerController(careerService *service.CareerService) *CareerController {
	return &CareerController{CareerService: careerService}
}

// @Summary 职业路径预测
// @Tags 职业规划
// @Accept json
// @Produce json
// @Param request body service.CareerPredictRequest true "技能、兴趣与时间范围"
// @Success 200 {object} util.Response
// @Router /api/career/predict [post]
func (c *CareerController) Predict(ctx *gin.Context) {
	var req service.CareerPredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.CareerService.PredictCareer(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary 行业技能趋势
// @Tags 职业规划
// @Accept json
// @Produce json
// @Param request body service.TrendsRequest true "已掌握技能"
// @Success 200 {object} util.Response
// @Router /api/career/trends [post]
func (c *CareerController) Trends(ctx *gin.Context) {
	var req service.TrendsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.CareerService.AnalyzeTrends(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, res)
}
