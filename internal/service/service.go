package service

import (
	"go.uber.org/zap"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/repository"
	"github.com/netrok/rh-api/pkg/jwt"
	"github.com/netrok/rh-api/pkg/redis"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Auth         AuthService
	Departamento CatalogoService
	Puesto       CatalogoService
	Turno        CatalogoService
	Horario      CatalogoService
	Empleado     EmpleadoService
	Export       ExportService
}

// NewService crea el agregado de servicios
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	// Un *redis.Client nil no debe llegar como interfaz no-nil
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		Departamento: NewDepartamentoService(cfg, repo, logger),
		Puesto:       NewPuestoService(repo, logger),
		Turno:        NewTurnoService(repo, logger),
		Horario:      NewHorarioService(repo, logger),
		Empleado:     NewEmpleadoService(cfg, repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
