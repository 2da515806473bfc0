package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/service"
	"github.com/netrok/rh-api/pkg/response"
)

// CatalogoHandler handlers HTTP compartidos por los cuatro catálogos.
// nombre se usa solo para los mensajes de error.
type CatalogoHandler struct {
	svc    service.CatalogoService
	nombre string
}

// NewCatalogoHandler crea un handler de catálogo
func NewCatalogoHandler(svc service.CatalogoService, nombre string) *CatalogoHandler {
	return &CatalogoHandler{svc: svc, nombre: nombre}
}

// List listado con búsqueda, filtros y paginación
// GET /api/v1/<catalogo>
func (h *CatalogoHandler) List(c *gin.Context) {
	var req dto.CatalogoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get detalle por id
// GET /api/v1/<catalogo>/:id
func (h *CatalogoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id, incluirEliminados(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, item)
}

// Create alta de entrada de catálogo
// POST /api/v1/<catalogo>
func (h *CatalogoHandler) Create(c *gin.Context) {
	var req dto.CreateCatalogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	item, err := h.svc.Create(c.Request.Context(), &req, usuarioDelContexto(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.Created(c, item)
}

// Update modificación parcial
// PUT|PATCH /api/v1/<catalogo>/:id
func (h *CatalogoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCatalogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, &req, usuarioDelContexto(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, item)
}

// SoftDelete borrado lógico
// POST /api/v1/<catalogo>/:id/soft-delete
func (h *CatalogoHandler) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.SoftDelete(c.Request.Context(), id, usuarioDelContexto(c)); err != nil {
		h.manejarError(c, err)
		return
	}

	response.NoContent(c)
}

// Restore reactiva una entrada borrada lógicamente
// POST /api/v1/<catalogo>/:id/restore
func (h *CatalogoHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.svc.Restore(c.Request.Context(), id, usuarioDelContexto(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, item)
}

// HardDelete borrado físico definitivo
// DELETE /api/v1/<catalogo>/:id
func (h *CatalogoHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.HardDelete(c.Request.Context(), id, usuarioDelContexto(c)); err != nil {
		h.manejarError(c, err)
		return
	}

	response.NoContent(c)
}

// manejarError mapea los errores de negocio del catálogo
func (h *CatalogoHandler) manejarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCatalogoNoEncontrado):
		response.NotFound(c, 13001, h.nombre+" no encontrado")
	case errors.Is(err, service.ErrCatalogoNombreExiste):
		response.Conflict(c, 13002, "ya existe un "+h.nombre+" con ese nombre")
	case errors.Is(err, service.ErrCatalogoClaveExiste):
		response.Conflict(c, 13003, "ya existe un "+h.nombre+" con esa clave")
	case errors.Is(err, service.ErrCatalogoNoEliminado):
		response.Conflict(c, 13004, "el "+h.nombre+" no está eliminado")
	case errors.Is(err, service.ErrRestauracionConflicto):
		response.Conflict(c, 13005, "un "+h.nombre+" vivo ya usa ese nombre o clave")
	case errors.Is(err, service.ErrDepartamentoNoExiste):
		response.Conflict(c, 13006, "el departamento indicado no existe o está eliminado")
	case errors.Is(err, service.ErrDepartamentoConPuestos):
		response.Conflict(c, 13007, "el departamento tiene puestos vinculados")
	default:
		response.InternalError(c)
	}
}
