package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen tope al Request-ID externo para evitar inyección en logs
const requestIDMaxLen = 64

// RequestID identificador de rastreo por request.
// Toma X-Request-ID del encabezado o genera un UUID, lo deja en el
// contexto y lo regresa en la respuesta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
