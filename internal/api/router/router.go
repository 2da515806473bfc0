package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/api/handler"
	"github.com/netrok/rh-api/internal/api/middleware"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/repository"
	"github.com/netrok/rh-api/pkg/jwt"
	"github.com/netrok/rh-api/pkg/rbac"
	"github.com/netrok/rh-api/pkg/redis"
)

// Setup arma y regresa el router Gin.
// repo se ocupa en JWTAuth para cargar los grupos del usuario una vez
// por petición; rdb puede ser nil (sin límite de intentos de login).
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	if err := dto.RegistrarValidadores(); err != nil {
		return nil, err
	}

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "pong"})
		})

		// Autenticación (sin token)
		auth := v1.Group("/auth")
		{
			auth.POST("/login",
				middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
				h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
			auth.POST("/verify", h.Auth.Verify)
		}

		// Rutas autenticadas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, repo, logger))
		{
			authorized.GET("/me", h.Auth.Me)

			// Catálogos: lectura con autenticación, escritura solo Admin
			catalogos := map[string]*handler.CatalogoHandler{
				"/departamentos": h.Departamento,
				"/puestos":       h.Puesto,
				"/turnos":        h.Turno,
				"/horarios":      h.Horario,
			}
			for path, ch := range catalogos {
				g := authorized.Group(path)
				g.Use(middleware.EscrituraPorGrupos(rbac.GroupAdmin))
				{
					g.GET("", ch.List)
					g.GET("/:id", ch.Get)
					g.POST("", ch.Create)
					g.PUT("/:id", ch.Update)
					g.PATCH("/:id", ch.Update)
					g.POST("/:id/soft-delete", middleware.RequiereGrupos(rbac.GroupAdmin), ch.SoftDelete)
					g.POST("/:id/restore", middleware.RequiereGrupos(rbac.GroupAdmin), ch.Restore)
					g.DELETE("/:id", middleware.RequiereGrupos(rbac.GroupAdmin), ch.HardDelete)
				}
			}

			// Empleados: escritura RRHH o Admin, destructivos solo Admin
			empleados := authorized.Group("/empleados")
			empleados.Use(middleware.EscrituraPorGrupos(rbac.GroupRRHH, rbac.GroupAdmin))
			{
				empleados.GET("", h.Empleado.List)
				empleados.GET("/export/excel", h.Empleado.Export)
				empleados.GET("/:id", h.Empleado.Get)
				empleados.GET("/:id/history", h.Empleado.History)
				empleados.POST("", h.Empleado.Create)
				empleados.PUT("/:id", h.Empleado.Update)
				empleados.PATCH("/:id", h.Empleado.Update)
				empleados.POST("/:id/soft-delete", middleware.RequiereGrupos(rbac.GroupAdmin), h.Empleado.SoftDelete)
				empleados.POST("/:id/restore", middleware.RequiereGrupos(rbac.GroupAdmin), h.Empleado.Restore)
				empleados.DELETE("/:id", middleware.RequiereGrupos(rbac.GroupAdmin), h.Empleado.HardDelete)

				bulk := empleados.Group("/bulk")
				bulk.Use(middleware.RequiereGrupos(rbac.GroupAdmin))
				{
					bulk.POST("/soft-delete", h.Empleado.BulkSoftDelete)
					bulk.POST("/restore", h.Empleado.BulkRestore)
					bulk.POST("/hard-delete", h.Empleado.BulkHardDelete)
				}
			}
		}
	}

	return r, nil
}
