package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tshirt-design-api/internal/core/auth"
	"tshirt-design-api/internal/core/config"
	"tshirt-design-api/internal/domain"
	"tshirt-design-api/internal/service"
	mdw "tshirt-design-api/internal/transport/http/middleware"
)

// NewAPIEngine 用户端：注册登录 + 自己的设计 CRUD + 静态图片
func NewAPIEngine(l *zap.Logger, cfg *config.Config, designs *service.DesignService, users *service.UserService, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(10<<20), // base64 内嵌图片走 JSON，上限 10MB
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 渲染图引用可直接当 URL 取回
	r.Static(cfg.Asset.BaseURL, cfg.Asset.Root)

	api := r.Group("/api")
	mountAuthActions(api, users, jwter)

	authed := api.Group("/designs")
	authed.Use(mdw.AuthJWT(jwter, ""))
	mountDesignActions(authed, designs)

	return r
}

// callerFrom AuthJWT 写入的身份，核心只拿来对比归属
func callerFrom(c *gin.Context) domain.Identity {
	return domain.Identity{ID: c.GetString(mdw.KeyUserID), Role: c.GetString(mdw.KeyRole)}
}
