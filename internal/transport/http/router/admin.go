package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tshirt-design-api/internal/core/auth"
	"tshirt-design-api/internal/domain"
	"tshirt-design-api/internal/service"
	mdw "tshirt-design-api/internal/transport/http/middleware"
)

// NewAdminEngine 后台端：设计评审 + 用户管理，整组要求 admin 角色
func NewAdminEngine(l *zap.Logger, designs *service.DesignService, users *service.UserService, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))

	mountAdminDesignActions(admin, designs)
	mountAdminUserActions(admin, users)

	return r
}
