package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/netrok/rh-api/internal/model"
)

// CatalogoListFilters filtros de listado comunes a los cuatro catálogos.
// DepartamentoID/DepartamentoNombre solo surten efecto en puestos.
type CatalogoListFilters struct {
	Q                  string
	Activo             *bool
	DepartamentoID     *uint
	DepartamentoNombre string
	IncludeDeleted     bool
	Deleted            *bool
	Ordering           string
	Offset             int
	Limit              int
}

// CatalogoRepository acceso a datos genérico de un catálogo.
// Una sola implementación parametrizada sirve a las cuatro entidades.
type CatalogoRepository[T model.Catalogable] interface {
	Create(ctx context.Context, ent T) error
	GetByID(ctx context.Context, id uint, includeDeleted bool) (T, error)
	// GetByNombre / GetByClave buscan solo entre registros vivos
	GetByNombre(ctx context.Context, nombre string) (T, error)
	GetByClave(ctx context.Context, clave string) (T, error)
	List(ctx context.Context, f *CatalogoListFilters) ([]T, int64, error)
	Update(ctx context.Context, ent T) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
}

// catalogoPtr restringe T a puntero de la entidad concreta; permite
// instanciar registros nuevos dentro de la implementación genérica.
type catalogoPtr[E any] interface {
	*E
	model.Catalogable
}

// catalogoConfig diferencias por entidad de la implementación genérica
type catalogoConfig struct {
	table         string
	searchColumns []string          // columnas para q (icontains)
	orderColumns  map[string]string // whitelist de ordering → columna
	joinDepto     bool              // puestos: join a cat_departamentos
}

type catalogoRepo[E any, T catalogoPtr[E]] struct {
	db  *gorm.DB
	cfg catalogoConfig
}

// NewDepartamentoRepo repositorio del catálogo de departamentos
func NewDepartamentoRepo(db *gorm.DB) CatalogoRepository[*model.Departamento] {
	return &catalogoRepo[model.Departamento, *model.Departamento]{db: db, cfg: catalogoConfig{
		table:         "cat_departamentos",
		searchColumns: []string{"cat_departamentos.nombre", "cat_departamentos.clave"},
		orderColumns:  catalogoOrderColumns("cat_departamentos"),
	}}
}

// NewPuestoRepo repositorio del catálogo de puestos
func NewPuestoRepo(db *gorm.DB) CatalogoRepository[*model.Puesto] {
	cols := catalogoOrderColumns("cat_puestos")
	cols["departamento"] = "cat_puestos.departamento_id"
	return &catalogoRepo[model.Puesto, *model.Puesto]{db: db, cfg: catalogoConfig{
		table:         "cat_puestos",
		searchColumns: []string{"cat_puestos.nombre", "cat_puestos.clave", "departamentos_join.nombre"},
		orderColumns:  cols,
		joinDepto:     true,
	}}
}

// NewTurnoRepo repositorio del catálogo de turnos
func NewTurnoRepo(db *gorm.DB) CatalogoRepository[*model.Turno] {
	return &catalogoRepo[model.Turno, *model.Turno]{db: db, cfg: catalogoConfig{
		table:         "cat_turnos",
		searchColumns: []string{"cat_turnos.nombre", "cat_turnos.clave"},
		orderColumns:  catalogoOrderColumns("cat_turnos"),
	}}
}

// NewHorarioRepo repositorio del catálogo de horarios
func NewHorarioRepo(db *gorm.DB) CatalogoRepository[*model.Horario] {
	return &catalogoRepo[model.Horario, *model.Horario]{db: db, cfg: catalogoConfig{
		table:         "cat_horarios",
		searchColumns: []string{"cat_horarios.nombre", "cat_horarios.clave"},
		orderColumns:  catalogoOrderColumns("cat_horarios"),
	}}
}

func catalogoOrderColumns(table string) map[string]string {
	return map[string]string{
		"id":         table + ".id",
		"nombre":     table + ".nombre",
		"clave":      table + ".clave",
		"created_at": table + ".created_at",
		"updated_at": table + ".updated_at",
	}
}

func (r *catalogoRepo[E, T]) Create(ctx context.Context, ent T) error {
	return r.db.WithContext(ctx).Create(ent).Error
}

func (r *catalogoRepo[E, T]) GetByID(ctx context.Context, id uint, includeDeleted bool) (T, error) {
	q := r.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	if r.cfg.joinDepto {
		q = q.Preload("Departamento")
	}
	var e E
	if err := q.Where(r.cfg.table+".id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return T(&e), nil
}

func (r *catalogoRepo[E, T]) GetByNombre(ctx context.Context, nombre string) (T, error) {
	var e E
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&e).Error; err != nil {
		return nil, err
	}
	return T(&e), nil
}

func (r *catalogoRepo[E, T]) GetByClave(ctx context.Context, clave string) (T, error) {
	var e E
	if err := r.db.WithContext(ctx).Where("clave = ?", clave).First(&e).Error; err != nil {
		return nil, err
	}
	return T(&e), nil
}

func (r *catalogoRepo[E, T]) List(ctx context.Context, f *CatalogoListFilters) ([]T, int64, error) {
	q := r.db.WithContext(ctx).Model(new(E))

	// include_deleted elige la vista base; deleted acota después
	if f.IncludeDeleted {
		q = q.Unscoped()
	}
	if f.Deleted != nil {
		if *f.Deleted {
			q = q.Where(r.cfg.table + ".deleted_at IS NOT NULL")
		} else {
			q = q.Where(r.cfg.table + ".deleted_at IS NULL")
		}
	}

	if r.cfg.joinDepto {
		q = q.Joins("LEFT JOIN cat_departamentos AS departamentos_join ON departamentos_join.id = " + r.cfg.table + ".departamento_id")
	}

	if f.Q != "" {
		pattern := "%" + f.Q + "%"
		conds := make([]string, len(r.cfg.searchColumns))
		args := make([]interface{}, len(r.cfg.searchColumns))
		for i, col := range r.cfg.searchColumns {
			conds[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	if f.Activo != nil {
		q = q.Where(r.cfg.table+".activo = ?", *f.Activo)
	}
	if f.DepartamentoID != nil {
		q = q.Where(r.cfg.table+".departamento_id = ?", *f.DepartamentoID)
	}
	if f.DepartamentoNombre != "" {
		q = q.Where("departamentos_join.nombre ILIKE ?", "%"+f.DepartamentoNombre+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(orderClause(f.Ordering, r.cfg.orderColumns, r.cfg.table+".id ASC"))
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	if r.cfg.joinDepto {
		q = q.Preload("Departamento")
	}

	var rows []E
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	result := make([]T, len(rows))
	for i := range rows {
		result[i] = T(&rows[i])
	}
	return result, total, nil
}

func (r *catalogoRepo[E, T]) Update(ctx context.Context, ent T) error {
	return r.db.WithContext(ctx).Save(ent).Error
}

// SoftDelete persiste únicamente deleted_at (scope por defecto de GORM)
func (r *catalogoRepo[E, T]) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(E))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Restore limpia únicamente deleted_at
func (r *catalogoRepo[E, T]) Restore(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Unscoped().Model(new(E)).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete elimina el renglón de forma permanente
func (r *catalogoRepo[E, T]) HardDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(new(E))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ── Vínculos Puesto→Departamento ──

// PuestoVinculoRepository consultas de integridad referencial usadas por
// la política de borrado de departamentos.
type PuestoVinculoRepository interface {
	// CountByDepartamento puestos vinculados al departamento. Con
	// includeDeleted cuenta también los borrados lógicamente, que aún
	// sostienen la llave foránea en la base.
	CountByDepartamento(ctx context.Context, departamentoID uint, includeDeleted bool) (int64, error)
	// NullifyDepartamento desvincula (departamento_id = NULL) los puestos
	// del departamento; includeDeleted con la misma semántica
	NullifyDepartamento(ctx context.Context, departamentoID uint, includeDeleted bool) error
}

type puestoVinculoRepo struct {
	db *gorm.DB
}

// NewPuestoVinculoRepo crea el repositorio de vínculos de puesto
func NewPuestoVinculoRepo(db *gorm.DB) PuestoVinculoRepository {
	return &puestoVinculoRepo{db: db}
}

func (r *puestoVinculoRepo) CountByDepartamento(ctx context.Context, departamentoID uint, includeDeleted bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Puesto{})
	if includeDeleted {
		q = q.Unscoped()
	}
	var count int64
	err := q.Where("departamento_id = ?", departamentoID).
		Count(&count).Error
	return count, err
}

func (r *puestoVinculoRepo) NullifyDepartamento(ctx context.Context, departamentoID uint, includeDeleted bool) error {
	q := r.db.WithContext(ctx).Model(&model.Puesto{})
	if includeDeleted {
		q = q.Unscoped()
	}
	return q.Where("departamento_id = ?", departamentoID).
		Update("departamento_id", nil).Error
}

// orderClause traduce el parámetro ordering ("campo" o "-campo") a una
// cláusula ORDER BY sobre la whitelist; fuera de ella aplica el default.
func orderClause(ordering string, allowed map[string]string, def string) string {
	if ordering == "" {
		return def
	}
	desc := false
	if strings.HasPrefix(ordering, "-") {
		desc = true
		ordering = ordering[1:]
	}
	col, ok := allowed[ordering]
	if !ok {
		return def
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
