package controller

import (
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// @Summary 创建学习者画像
// @Description 以默认值创建画像，未指定 id 时自动生成
// @Tags 学习者画像
// @Accept json
// @Produce json
// @Param request body service.CreateProfileRequest true "画像初始字段"
// @Success 201 {object} util.Response
// @Router /api/profiles [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	var req service.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 携带令牌时只能创建令牌主体自己的画像
	if claims := util.GetClaimsFromContext(ctx); claims != nil {
		if req.ID == "" {
			req.ID = claims.Subject
		}
		if req.ID != claims.Subject {
			util.Forbidden(ctx)
			return
		}
	}

	profile, err := c.ProfileService.CreateProfile(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, profile)
}

// @Summary 获取学习者画像
// @Tags 学习者画像
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.ProfileService.GetProfile(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 更新学习者画像
// @Description 整体替换画像字段，成就只能通过事件获得
// @Tags 学习者画像
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Param request body engine.Profile true "画像"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var profile engine.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.ProfileService.UpdateProfile(ctx.Request.Context(), ctx.Param("id"), profile)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

type recordActivitiesRequest struct {
	Activities []engine.ActivityRecord `json:"activities"`
}

// @Summary 上报学习活动
// @Description 追加活动记录并重算学习模式
// @Tags 学习者画像
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 201 {object} util.Response
// @Router /api/profiles/{id}/activities [post]
func (c *ProfileController) RecordActivities(ctx *gin.Context) {
	var req recordActivitiesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patterns, err := c.ProfileService.RecordActivities(ctx.Request.Context(), ctx.Param("id"), req.Activities)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"recorded": len(req.Activities), "learningPatterns": patterns})
}

// @Summary 最近学习活动
// @Tags 学习者画像
// @Produce json
// @Security BearerAuth
// @Param id path string true "画像ID"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/activities [get]
func (c *ProfileController) History(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.ProfileService.ProfileRepo.FindByID(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	history, err := c.ProfileService.History(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, history)
}
