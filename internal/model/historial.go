package model

import (
	"time"

	"gorm.io/datatypes"
)

// Entidades auditadas.
const (
	EntidadDepartamento = "departamento"
	EntidadPuesto       = "puesto"
	EntidadEmpleado     = "empleado"
)

// Tipos de cambio.
const (
	CambioCreated = "created"
	CambioUpdated = "updated"
	CambioDeleted = "deleted"
)

// Historial registro de auditoría inmutable — historial.
// Se agrega un renglón por cada mutación (alta, modificación, borrado
// lógico/físico, restauración) con el snapshot completo del registro.
// Nunca se actualiza ni se borra por operaciones normales.
type Historial struct {
	ID         uint           `gorm:"primaryKey"                json:"id"`
	Entidad    string         `gorm:"type:varchar(40);not null" json:"entidad"`
	RegistroID uint           `gorm:"not null;index"            json:"registro_id"`
	TipoCambio string         `gorm:"type:varchar(10);not null" json:"tipo_cambio"`
	UsuarioID  *uint          `json:"usuario_id"`
	Fecha      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"fecha"`
	Snapshot   datatypes.JSON `gorm:"type:jsonb;not null"       json:"snapshot"`

	// Usuario que realizó el cambio; nulo si fue eliminado o no se registró
	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
}

// TableName nombre de tabla
func (Historial) TableName() string { return "historial" }
