package middleware

import (
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 校验认证服务签发的 Bearer 令牌；未启用 JWT 时直接放行
func AuthMiddleware(cfg config.JWTConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.Issuer, cfg.Secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err), zap.String("path", c.FullPath()))
			util.Unauthorized(c)
			return
		}

		c.Set(util.ContextClaimsKey, claims)
		c.Next()
	}
}

// ProfileOwner 令牌主体必须与路径中的画像ID一致；未携带令牌(JWT 未启用)时不做限制
func ProfileOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetClaimsFromContext(c)
		if claims == nil {
			c.Next()
			return
		}

		if claims.Subject != c.Param(param) {
			util.Forbidden(c)
			return
		}
		c.Next()
	}
}
