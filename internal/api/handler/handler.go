package handler

import "github.com/netrok/rh-api/internal/service"

// Handler agregado de todos los handlers HTTP
type Handler struct {
	Auth         *AuthHandler
	Departamento *CatalogoHandler
	Puesto       *CatalogoHandler
	Turno        *CatalogoHandler
	Horario      *CatalogoHandler
	Empleado     *EmpleadoHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Departamento: NewCatalogoHandler(svc.Departamento, "departamento"),
		Puesto:       NewCatalogoHandler(svc.Puesto, "puesto"),
		Turno:        NewCatalogoHandler(svc.Turno, "turno"),
		Horario:      NewCatalogoHandler(svc.Horario, "horario"),
		Empleado:     NewEmpleadoHandler(svc.Empleado, svc.Export),
	}
}
