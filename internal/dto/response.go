package dto

// PaginationRequest parámetros comunes de paginación
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage página con valor por defecto
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize tamaño de página con valor por defecto
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset desplazamiento calculado
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// SoftDeleteFilter selección de vista sobre registros borrados.
//
// include_deleted elige el conjunto base (solo vivos vs todos); el filtro
// tri-estado deleted se aplica después y solo puede acotar:
//   - deleted=true sobre la base de vivos produce un conjunto vacío
//   - deleted=false sobre la base de vivos no altera nada
type SoftDeleteFilter struct {
	IncludeDeleted bool  `form:"include_deleted"`
	Deleted        *bool `form:"deleted"`
}
