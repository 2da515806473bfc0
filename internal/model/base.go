package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel timestamps comunes (modelos sin borrado lógico)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// SoftDeleteModel timestamps más borrado lógico.
// Invariante: deleted_at IS NULL ⇔ registro vivo. El scope por defecto de
// GORM excluye borrados; las vistas "todos" y "solo borrados" se obtienen
// con Unscoped en el repositorio.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// IsAlive true si el registro no está borrado lógicamente
func (m *SoftDeleteModel) IsAlive() bool {
	return !m.DeletedAt.Valid
}
