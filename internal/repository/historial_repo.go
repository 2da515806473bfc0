package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/netrok/rh-api/internal/model"
)

// HistorialRepository bitácora de cambios por entidad
type HistorialRepository interface {
	Append(ctx context.Context, h *model.Historial) error
	// ListByEntidad entradas de una entidad concreta, más reciente primero
	ListByEntidad(ctx context.Context, entidad string, registroID uint) ([]*model.Historial, error)
}

type historialRepo struct {
	db *gorm.DB
}

// NewHistorialRepo crea el repositorio de historial
func NewHistorialRepo(db *gorm.DB) HistorialRepository {
	return &historialRepo{db: db}
}

func (r *historialRepo) Append(ctx context.Context, h *model.Historial) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historialRepo) ListByEntidad(ctx context.Context, entidad string, registroID uint) ([]*model.Historial, error) {
	var entradas []*model.Historial
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("entidad = ? AND registro_id = ?", entidad, registroID).
		Order("fecha DESC, id DESC").
		Find(&entradas).Error
	if err != nil {
		return nil, err
	}
	return entradas, nil
}
