package middleware

import (
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/logger"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// AuthMiddleware 校验令牌，并要求令牌对应的用户仍是该设备当前的会话用户
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, authService.Cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		// 令牌绑定设备；请求头中带了设备 ID 时必须一致
		if deviceIDSupplied(c) && DeviceID(c) != claims.DeviceID {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(deviceIDKey, claims.DeviceID)
		c.Header(util.DeviceIDHeader, claims.DeviceID)

		store, err := authService.Authorize(c.Request.Context(), claims)
		if err != nil {
			if errors.Is(err, util.ErrSessionNotFound) || errors.Is(err, util.ErrSessionMismatch) {
				logger.Log.Debug("会话已失效", zap.String("device", claims.DeviceID), zap.Error(err))
				util.Unauthorized(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Set(sessionKey, store)
		c.Next()
	}
}

// Session 由 AuthMiddleware 放入上下文的设备会话
func Session(c *gin.Context) *service.SessionStore {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	store, _ := v.(*service.SessionStore)
	return store
}
