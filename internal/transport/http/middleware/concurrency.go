package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "tshirt-design-api/internal/transport/http/response"
)

// ConcurrencyLimit 限制在途请求数，保护 DB 下游
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "server busy"))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
