package middleware

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/response"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// refreshBuffer 剩余有效期低于该值时通过 X-New-Access-Token 下发新 token
const refreshBuffer = 10 * time.Minute

func bearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func authenticate(c *gin.Context, secret []byte, token string) error {
	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
	if err != nil {
		return err
	}
	if jwt.ShouldRotateToken(claims, refreshBuffer) && claims.IssuedAt != nil && claims.ExpiresAt != nil {
		ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		if newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Email, jwt.TypeAccess, ttl); err == nil {
			c.Header("X-New-Access-Token", newToken)
		}
	}
	c.Set(context.CtxUserID, claims.UserID)
	c.Set("email", claims.Email)
	return nil
}

// Auth 必须登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}
		token, ok := bearer(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}
		if err := authenticate(c, secret, token); err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Next()
	}
}

// OptionalAuth 带合法 token 时识别用户，否则按匿名处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearer(c); ok {
			_ = authenticate(c, secret, token)
		}
		c.Next()
	}
}
