package dto

import "encoding/json"

// HistorialResponse registro de auditoría serializado.
// Proyección fija de campos de negocio más el snapshot completo.
type HistorialResponse struct {
	HistoryID   uint            `json:"history_id"`
	HistoryDate string          `json:"history_date"`
	HistoryUser *string         `json:"history_user"` // nulo si el usuario ya no existe
	HistoryType string          `json:"history_type"` // created | updated | deleted
	NumEmpleado    string          `json:"num_empleado,omitempty"`
	Nombres        string          `json:"nombres,omitempty"`
	Apellidos      string          `json:"apellidos,omitempty"`
	DepartamentoID *uint           `json:"departamento_id"`
	PuestoID       *uint           `json:"puesto_id"`
	Activo         *bool           `json:"activo,omitempty"`
	DeletedAt      *string         `json:"deleted_at"`
	Snapshot       json.RawMessage `json:"snapshot"`
}
