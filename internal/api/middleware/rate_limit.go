package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/netrok/rh-api/pkg/redis"
	"github.com/netrok/rh-api/pkg/response"
)

// RateLimit limitador por ventana deslizante sobre Redis.
// limit: máximo de peticiones dentro de la ventana
// window: duración de la ventana
// Con rdb nil o Redis caído se deja pasar la petición.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "demasiadas peticiones, intente más tarde")
			c.Abort()
			return
		}

		c.Next()
	}
}
