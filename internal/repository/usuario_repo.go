package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/netrok/rh-api/internal/model"
)

// UsuarioRepository acceso a datos de usuarios y sus grupos
type UsuarioRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*model.Usuario, error)
	// GroupNames nombres de grupos del usuario; el middleware los carga
	// una sola vez por request y los cachea en el contexto
	GroupNames(ctx context.Context, userID uint) ([]string, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo crea el repositorio de usuarios
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) GetByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Grupos").
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) GetByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Grupos").
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) GroupNames(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.Grupo{}).
		Joins("JOIN usuario_grupos ON usuario_grupos.grupo_id = grupos.id").
		Where("usuario_grupos.usuario_id = ?", userID).
		Pluck("grupos.nombre", &names).Error
	return names, err
}
