package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/netrok/rh-api/internal/model"
)

// empleadoSearchColumns columnas de la búsqueda amplia (q)
var empleadoSearchColumns = []string{
	"empleados.num_empleado",
	"empleados.nombres",
	"empleados.apellido_paterno",
	"empleados.apellido_materno",
	"empleados.email",
	"empleados.curp",
	"empleados.rfc",
	"empleados.nss",
	"departamentos_join.nombre",
	"puestos_join.nombre",
}

// empleadoOrderColumns whitelist de ordering
var empleadoOrderColumns = map[string]string{
	"id":               "empleados.id",
	"num_empleado":     "empleados.num_empleado",
	"fecha_ingreso":    "empleados.fecha_ingreso",
	"apellido_paterno": "empleados.apellido_paterno",
	"created_at":       "empleados.created_at",
}

// EmpleadoListFilters filtros combinables del listado de empleados
type EmpleadoListFilters struct {
	Q                  string
	Activo             *bool
	DepartamentoID     *uint
	PuestoID           *uint
	DepartamentoNombre string
	PuestoNombre       string
	Genero             string
	IncludeDeleted     bool
	Deleted            *bool
	Ordering           string
	Offset             int
	Limit              int
}

// EmpleadoRepository acceso a datos de empleados
type EmpleadoRepository interface {
	Create(ctx context.Context, e *model.Empleado) error
	GetByID(ctx context.Context, id uint, includeDeleted bool) (*model.Empleado, error)
	// Búsquedas por identificador, solo entre registros vivos; sirven a
	// los prechequeos de unicidad (la constraint parcial respalda la carrera)
	GetByNumEmpleado(ctx context.Context, num string) (*model.Empleado, error)
	GetByCURP(ctx context.Context, curp string) (*model.Empleado, error)
	GetByRFC(ctx context.Context, rfc string) (*model.Empleado, error)
	GetByNSS(ctx context.Context, nss string) (*model.Empleado, error)
	List(ctx context.Context, f *EmpleadoListFilters) ([]model.Empleado, int64, error)
	Update(ctx context.Context, e *model.Empleado) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
	// Variantes en lote: una sola operación de conjunto, devuelven afectados
	BulkSoftDelete(ctx context.Context, ids []uint) (int64, error)
	BulkRestore(ctx context.Context, ids []uint) (int64, error)
	BulkHardDelete(ctx context.Context, ids []uint) (int64, error)
}

type empleadoRepo struct {
	db *gorm.DB
}

// NewEmpleadoRepo crea el repositorio de empleados
func NewEmpleadoRepo(db *gorm.DB) EmpleadoRepository {
	return &empleadoRepo{db: db}
}

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) GetByID(ctx context.Context, id uint, includeDeleted bool) (*model.Empleado, error) {
	q := r.db.WithContext(ctx).
		Preload("Departamento").
		Preload("Puesto").
		Preload("Turno").
		Preload("Horario")
	if includeDeleted {
		q = q.Unscoped()
	}
	var e model.Empleado
	if err := q.Where("empleados.id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) GetByNumEmpleado(ctx context.Context, num string) (*model.Empleado, error) {
	return r.getByCampo(ctx, "num_empleado", num)
}

func (r *empleadoRepo) GetByCURP(ctx context.Context, curp string) (*model.Empleado, error) {
	return r.getByCampo(ctx, "curp", curp)
}

func (r *empleadoRepo) GetByRFC(ctx context.Context, rfc string) (*model.Empleado, error) {
	return r.getByCampo(ctx, "rfc", rfc)
}

func (r *empleadoRepo) GetByNSS(ctx context.Context, nss string) (*model.Empleado, error) {
	return r.getByCampo(ctx, "nss", nss)
}

func (r *empleadoRepo) getByCampo(ctx context.Context, campo, valor string) (*model.Empleado, error) {
	var e model.Empleado
	if err := r.db.WithContext(ctx).Where(campo+" = ?", valor).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) List(ctx context.Context, f *EmpleadoListFilters) ([]model.Empleado, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Empleado{})

	if f.IncludeDeleted {
		q = q.Unscoped()
	}
	if f.Deleted != nil {
		if *f.Deleted {
			q = q.Where("empleados.deleted_at IS NOT NULL")
		} else {
			q = q.Where("empleados.deleted_at IS NULL")
		}
	}

	q = q.Joins("LEFT JOIN cat_departamentos AS departamentos_join ON departamentos_join.id = empleados.departamento_id").
		Joins("LEFT JOIN cat_puestos AS puestos_join ON puestos_join.id = empleados.puesto_id")

	if f.Q != "" {
		pattern := "%" + f.Q + "%"
		conds := make([]string, len(empleadoSearchColumns))
		args := make([]interface{}, len(empleadoSearchColumns))
		for i, col := range empleadoSearchColumns {
			conds[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	if f.Activo != nil {
		q = q.Where("empleados.activo = ?", *f.Activo)
	}
	if f.DepartamentoID != nil {
		q = q.Where("empleados.departamento_id = ?", *f.DepartamentoID)
	}
	if f.PuestoID != nil {
		q = q.Where("empleados.puesto_id = ?", *f.PuestoID)
	}
	if f.DepartamentoNombre != "" {
		q = q.Where("departamentos_join.nombre ILIKE ?", "%"+f.DepartamentoNombre+"%")
	}
	if f.PuestoNombre != "" {
		q = q.Where("puestos_join.nombre ILIKE ?", "%"+f.PuestoNombre+"%")
	}
	if f.Genero != "" {
		q = q.Where("UPPER(empleados.genero) = UPPER(?)", f.Genero)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(orderClause(f.Ordering, empleadoOrderColumns, "empleados.num_empleado ASC"))
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}

	var rows []model.Empleado
	err := q.Preload("Departamento").
		Preload("Puesto").
		Preload("Turno").
		Preload("Horario").
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *empleadoRepo) Update(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empleadoRepo) SoftDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Empleado{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *empleadoRepo) Restore(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Unscoped().Model(&model.Empleado{}).
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

func (r *empleadoRepo) HardDelete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.Empleado{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *empleadoRepo) BulkSoftDelete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Empleado{})
	return res.RowsAffected, res.Error
}

func (r *empleadoRepo) BulkRestore(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&model.Empleado{}).
		Where("id IN ? AND deleted_at IS NOT NULL", ids).
		Update("deleted_at", nil)
	return res.RowsAffected, res.Error
}

func (r *empleadoRepo) BulkHardDelete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&model.Empleado{})
	return res.RowsAffected, res.Error
}
