package dto

// ── Catálogos (Departamento, Puesto, Turno, Horario) ──

// CreateCatalogoRequest alta de entrada de catálogo.
// Departamento solo aplica a puestos; los demás catálogos lo ignoran.
type CreateCatalogoRequest struct {
	Nombre       string  `json:"nombre"       binding:"required,min=2,max=120"`
	Clave        *string `json:"clave"        binding:"omitempty,min=1,max=20"`
	Activo       *bool   `json:"activo"`
	Departamento *uint   `json:"departamento" binding:"omitempty,min=1"`
}

// UpdateCatalogoRequest modificación parcial de entrada de catálogo
type UpdateCatalogoRequest struct {
	Nombre       *string `json:"nombre"       binding:"omitempty,min=2,max=120"`
	Clave        *string `json:"clave"        binding:"omitempty,max=20"`
	Activo       *bool   `json:"activo"`
	Departamento *uint   `json:"departamento"`
}

// CatalogoListRequest parámetros de listado de catálogos
type CatalogoListRequest struct {
	Q                  string `form:"q"`
	Activo             *bool  `form:"activo"`
	Departamento       *uint  `form:"departamento"`        // solo puestos
	DepartamentoNombre string `form:"departamento_nombre"` // solo puestos
	Ordering           string `form:"ordering"`
	SoftDeleteFilter
	PaginationRequest
}

// CatalogoResponse entrada de catálogo serializada
type CatalogoResponse struct {
	ID                 uint    `json:"id"`
	Nombre             string  `json:"nombre"`
	Clave              *string `json:"clave"`
	Activo             bool    `json:"activo"`
	Departamento       *uint   `json:"departamento,omitempty"`
	DepartamentoNombre *string `json:"departamento_nombre,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
	DeletedAt          *string `json:"deleted_at"`
}
