package middleware

import (
	"context"
	"net/http"
	"strings"

	"promptbox/models"
	ginctx "promptbox/pkg/context"
	"promptbox/pkg/jwt"
	"promptbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserFinder 根据ID加载用户，查不到返回 nil
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Auth 必须携带有效令牌，且令牌指向的用户必须存在
func Auth(secret []byte, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveToken(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "未登录或登录已过期")
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			response.Abort(c, http.StatusUnauthorized, "用户不存在")
			return
		}

		c.Set(ginctx.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 令牌可选，解析失败按匿名处理
func OptionalAuth(secret []byte, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveToken(c, secret)
		if !ok {
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(ginctx.CtxUserID, claims.UserID)
		c.Next()
	}
}

func resolveToken(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
