package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/netrok/rh-api/pkg/response"
)

// BodyLimit límite global de tamaño del cuerpo de la petición.
// maxBytes: máximo de bytes permitidos (p.ej. 1<<20 = 1MB)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "cuerpo de la petición demasiado grande")
				return
			}
		}
	}
}
