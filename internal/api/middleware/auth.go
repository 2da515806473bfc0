package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/netrok/rh-api/internal/repository"
	"github.com/netrok/rh-api/pkg/jwt"
	"github.com/netrok/rh-api/pkg/rbac"
	"github.com/netrok/rh-api/pkg/response"
)

// PrincipalKey clave del principal autenticado en el gin.Context
const PrincipalKey = "principal"

// JWTAuth autenticación por Access Token (Authorization: Bearer <token>).
// Carga los grupos del usuario una sola vez y deja el rbac.Principal en
// el contexto del request; ningún estado compartido entre requests.
func JWTAuth(jwtMgr *jwt.Manager, repo *repository.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta el encabezado de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "formato de encabezado de autenticación inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido o expirado")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		groups, err := repo.Usuario.GroupNames(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Error("cargar grupos del usuario falló",
				zap.Uint("user_id", claims.UserID), zap.Error(err))
			response.InternalError(c)
			c.Abort()
			return
		}

		c.Set(PrincipalKey, &rbac.Principal{
			UserID:      claims.UserID,
			Username:    claims.Username,
			IsStaff:     claims.IsStaff,
			IsSuperuser: claims.IsSuperuser,
			Groups:      groups,
		})

		c.Next()
	}
}

// GetPrincipal extrae el principal autenticado del contexto; nil si no hay
func GetPrincipal(c *gin.Context) *rbac.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*rbac.Principal)
	return p
}

// EscrituraPorGrupos regla general de escritura de un recurso: los
// métodos seguros pasan solo con autenticación; los mutadores exigen
// grupo permitido, superusuario o bandera de staff.
func EscrituraPorGrupos(writeGroups ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
			return
		}

		p := GetPrincipal(c)
		if p == nil {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}
		if !p.CanWrite(writeGroups...) {
			response.Forbidden(c, 10003, "sin permiso para modificar este recurso")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequiereGrupos compuerta estricta: solo superusuario o miembros de los
// grupos dados (la bandera de staff no basta). Se usa en borrado físico,
// borrado lógico, restauración y operaciones en lote.
func RequiereGrupos(groups ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}
		if !p.InGroups(groups...) {
			response.Forbidden(c, 10003, "operación reservada a administradores")
			c.Abort()
			return
		}
		c.Next()
	}
}
