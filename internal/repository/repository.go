package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/netrok/rh-api/internal/model"
)

// Repository punto de entrada agregado de todos los repositorios
type Repository struct {
	Usuario       UsuarioRepository
	Departamento  CatalogoRepository[*model.Departamento]
	Puesto        CatalogoRepository[*model.Puesto]
	Turno         CatalogoRepository[*model.Turno]
	Horario       CatalogoRepository[*model.Horario]
	PuestoVinculo PuestoVinculoRepository
	Empleado      EmpleadoRepository
	Historial     HistorialRepository

	db *gorm.DB
}

// NewRepository crea el agregado de repositorios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:       NewUsuarioRepo(db),
		Departamento:  NewDepartamentoRepo(db),
		Puesto:        NewPuestoRepo(db),
		Turno:         NewTurnoRepo(db),
		Horario:       NewHorarioRepo(db),
		PuestoVinculo: NewPuestoVinculoRepo(db),
		Empleado:      NewEmpleadoRepo(db),
		Historial:     NewHistorialRepo(db),
		db:            db,
	}
}

// Transaction ejecuta fn dentro de una transacción: commit al terminar sin
// error, rollback completo en caso contrario. Cada operación mutadora de
// los servicios (mutación + historial) corre dentro de una.
// Sin conexión subyacente (repositorios mock en tests) ejecuta fn directo.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
