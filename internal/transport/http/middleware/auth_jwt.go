package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tshirt-design-api/internal/core/auth"
	resp "tshirt-design-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 解析 Bearer token 并把 uid/role 写入 context；requireRole 非空时顺带做角色闸门
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
