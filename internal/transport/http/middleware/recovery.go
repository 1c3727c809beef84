package middleware

import (
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery panic 落结构化日志（带堆栈）后返回 500
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.RecoveryWithZap(l, true)
}
