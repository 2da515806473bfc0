package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/service"
	"github.com/netrok/rh-api/pkg/response"
)

const excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmpleadoHandler handlers HTTP del módulo de empleados
type EmpleadoHandler struct {
	empSvc    service.EmpleadoService
	exportSvc service.ExportService
}

// NewEmpleadoHandler crea el EmpleadoHandler
func NewEmpleadoHandler(empSvc service.EmpleadoService, exportSvc service.ExportService) *EmpleadoHandler {
	return &EmpleadoHandler{empSvc: empSvc, exportSvc: exportSvc}
}

// List listado con búsqueda, filtros y paginación
// GET /api/v1/empleados
func (h *EmpleadoHandler) List(c *gin.Context) {
	var req dto.EmpleadoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	list, total, err := h.empSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get detalle por id
// GET /api/v1/empleados/:id
func (h *EmpleadoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.GetByID(c.Request.Context(), id, incluirEliminados(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, emp)
}

// Create alta de empleado
// POST /api/v1/empleados
func (h *EmpleadoHandler) Create(c *gin.Context) {
	var req dto.CreateEmpleadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), &req, usuarioDelContexto(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.Created(c, emp)
}

// Update modificación parcial
// PUT|PATCH /api/v1/empleados/:id
func (h *EmpleadoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmpleadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	emp, err := h.empSvc.Update(c.Request.Context(), id, &req, usuarioDelContexto(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, emp)
}

// SoftDelete borrado lógico
// POST /api/v1/empleados/:id/soft-delete
func (h *EmpleadoHandler) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.empSvc.SoftDelete(c.Request.Context(), id, usuarioDelContexto(c)); err != nil {
		h.manejarError(c, err)
		return
	}

	response.NoContent(c)
}

// Restore reactiva un empleado borrado lógicamente
// POST /api/v1/empleados/:id/restore
func (h *EmpleadoHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.Restore(c.Request.Context(), id, usuarioDelContexto(c))
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, emp)
}

// HardDelete borrado físico definitivo
// DELETE /api/v1/empleados/:id
func (h *EmpleadoHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.empSvc.HardDelete(c.Request.Context(), id, usuarioDelContexto(c)); err != nil {
		h.manejarError(c, err)
		return
	}

	response.NoContent(c)
}

// History historial de cambios del empleado, del más reciente al más antiguo
// GET /api/v1/empleados/:id/history
func (h *EmpleadoHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.empSvc.History(c.Request.Context(), id)
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// BulkSoftDelete borrado lógico en lote
// POST /api/v1/empleados/bulk/soft-delete
func (h *EmpleadoHandler) BulkSoftDelete(c *gin.Context) {
	h.bulk(c, h.empSvc.BulkSoftDelete)
}

// BulkRestore reactivación en lote
// POST /api/v1/empleados/bulk/restore
func (h *EmpleadoHandler) BulkRestore(c *gin.Context) {
	h.bulk(c, h.empSvc.BulkRestore)
}

// BulkHardDelete borrado físico en lote
// POST /api/v1/empleados/bulk/hard-delete
func (h *EmpleadoHandler) BulkHardDelete(c *gin.Context) {
	h.bulk(c, h.empSvc.BulkHardDelete)
}

func (h *EmpleadoHandler) bulk(c *gin.Context, op func(ctx context.Context, ids []uint) (*dto.BulkResponse, error)) {
	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	result, err := op(c.Request.Context(), req.IDs)
	if err != nil {
		h.manejarError(c, err)
		return
	}

	response.OK(c, result)
}

// Export descarga del padrón filtrado en formato Excel
// GET /api/v1/empleados/export/excel
func (h *EmpleadoHandler) Export(c *gin.Context) {
	var req dto.EmpleadoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		errorDeBind(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportEmpleados(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, excelMIME, buf.Bytes())
}

// manejarError mapea los errores de negocio del módulo de empleados
func (h *EmpleadoHandler) manejarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmpleadoNoEncontrado):
		response.NotFound(c, 14001, "empleado no encontrado")
	case errors.Is(err, service.ErrNumEmpleadoExiste):
		response.Conflict(c, 14002, "ya existe un empleado con ese número")
	case errors.Is(err, service.ErrCURPExiste):
		response.Conflict(c, 14003, "ya existe un empleado con esa CURP")
	case errors.Is(err, service.ErrRFCExiste):
		response.Conflict(c, 14004, "ya existe un empleado con ese RFC")
	case errors.Is(err, service.ErrNSSExiste):
		response.Conflict(c, 14005, "ya existe un empleado con ese NSS")
	case errors.Is(err, service.ErrEmpleadoDuplicado):
		response.Conflict(c, 14006, "identificadores de empleado duplicados")
	case errors.Is(err, service.ErrEmpleadoNoEliminado):
		response.Conflict(c, 14007, "el empleado no está eliminado")
	case errors.Is(err, service.ErrEmpleadoRestauracionConflicto):
		response.Conflict(c, 14008, "un empleado vivo ya usa alguno de sus identificadores")
	case errors.Is(err, service.ErrReferenciaCatalogoInvalida):
		response.Conflict(c, 14009, "referencia a catálogo inexistente o eliminado")
	default:
		response.InternalError(c)
	}
}
