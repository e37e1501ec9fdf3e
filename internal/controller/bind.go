package controller

import (
	"github.com/gin-gonic/gin"
)

// bindOptionalJSON 请求体为空时保留零值
func bindOptionalJSON(ctx *gin.Context, obj interface{}) error {
	if ctx.Request.ContentLength == 0 {
		return nil
	}
	return ctx.ShouldBindJSON(obj)
}
