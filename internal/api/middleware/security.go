package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders encabezados de seguridad comunes.
// Previene clickjacking, sniffing de MIME y fugas de referrer.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		c.Next()
	}
}
