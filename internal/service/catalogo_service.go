package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/model"
	"github.com/netrok/rh-api/internal/repository"
)

// ── Errores de negocio de catálogos ──

var (
	ErrCatalogoNoEncontrado   = errors.New("registro de catálogo no encontrado")
	ErrCatalogoNombreExiste   = errors.New("ya existe un registro vivo con ese nombre")
	ErrCatalogoClaveExiste    = errors.New("ya existe un registro vivo con esa clave")
	ErrCatalogoNoEliminado    = errors.New("el registro no está eliminado")
	ErrRestauracionConflicto  = errors.New("existe un registro vivo con los mismos identificadores")
	ErrDepartamentoNoExiste   = errors.New("el departamento indicado no existe")
	ErrDepartamentoConPuestos = errors.New("el departamento tiene puestos vinculados")
)

// CatalogoService operaciones de negocio comunes a los cuatro catálogos
type CatalogoService interface {
	Create(ctx context.Context, req *dto.CreateCatalogoRequest, usuarioID *uint) (*dto.CatalogoResponse, error)
	GetByID(ctx context.Context, id uint, includeDeleted bool) (*dto.CatalogoResponse, error)
	List(ctx context.Context, req *dto.CatalogoListRequest) ([]dto.CatalogoResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCatalogoRequest, usuarioID *uint) (*dto.CatalogoResponse, error)
	SoftDelete(ctx context.Context, id uint, usuarioID *uint) error
	Restore(ctx context.Context, id uint, usuarioID *uint) (*dto.CatalogoResponse, error)
	HardDelete(ctx context.Context, id uint, usuarioID *uint) error
}

// catPtr restringe T a puntero de la entidad de catálogo concreta
type catPtr[E any] interface {
	*E
	model.Catalogable
}

// catalogoCore implementación genérica; las diferencias por entidad
// (historial, vínculo a departamento, política de borrado) se fijan en
// los constructores.
type catalogoCore[E any, T catPtr[E]] struct {
	repo *repository.Repository
	// sel obtiene el repo del catálogo a partir del agregado; permite
	// resolver el repo correcto dentro de una transacción
	sel      func(r *repository.Repository) repository.CatalogoRepository[T]
	entidad  string // "" = sin historial
	esPuesto bool
	politica string // solo departamentos: block | nullify
	logger   *zap.Logger
}

// NewDepartamentoService servicio del catálogo de departamentos
func NewDepartamentoService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) CatalogoService {
	return &catalogoCore[model.Departamento, *model.Departamento]{
		repo:     repo,
		sel:      func(r *repository.Repository) repository.CatalogoRepository[*model.Departamento] { return r.Departamento },
		entidad:  model.EntidadDepartamento,
		politica: cfg.Catalog.PuestoDepartamentoPolicy,
		logger:   logger,
	}
}

// NewPuestoService servicio del catálogo de puestos
func NewPuestoService(repo *repository.Repository, logger *zap.Logger) CatalogoService {
	return &catalogoCore[model.Puesto, *model.Puesto]{
		repo:     repo,
		sel:      func(r *repository.Repository) repository.CatalogoRepository[*model.Puesto] { return r.Puesto },
		entidad:  model.EntidadPuesto,
		esPuesto: true,
		logger:   logger,
	}
}

// NewTurnoService servicio del catálogo de turnos
func NewTurnoService(repo *repository.Repository, logger *zap.Logger) CatalogoService {
	return &catalogoCore[model.Turno, *model.Turno]{
		repo:   repo,
		sel:    func(r *repository.Repository) repository.CatalogoRepository[*model.Turno] { return r.Turno },
		logger: logger,
	}
}

// NewHorarioService servicio del catálogo de horarios
func NewHorarioService(repo *repository.Repository, logger *zap.Logger) CatalogoService {
	return &catalogoCore[model.Horario, *model.Horario]{
		repo:   repo,
		sel:    func(r *repository.Repository) repository.CatalogoRepository[*model.Horario] { return r.Horario },
		logger: logger,
	}
}

// ────────────────────── Create ──────────────────────

func (s *catalogoCore[E, T]) Create(ctx context.Context, req *dto.CreateCatalogoRequest, usuarioID *uint) (*dto.CatalogoResponse, error) {
	catRepo := s.sel(s.repo)

	if err := s.verificarUnicidad(ctx, catRepo, req.Nombre, req.Clave, 0); err != nil {
		return nil, err
	}

	obj := T(new(E))
	c := obj.Catalogo()
	c.Nombre = req.Nombre
	if req.Clave != nil && *req.Clave != "" {
		c.Clave = req.Clave
	}
	c.Activo = true
	if req.Activo != nil {
		c.Activo = *req.Activo
	}

	if p, ok := any(obj).(*model.Puesto); ok && req.Departamento != nil {
		if err := s.validarDepartamento(ctx, *req.Departamento); err != nil {
			return nil, err
		}
		p.DepartamentoID = req.Departamento
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.sel(tx).Create(ctx, obj); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, obj, model.CambioCreated, usuarioID)
	})
	if err != nil {
		s.logger.Error("crear registro de catálogo falló", zap.String("tabla", obj.TableName()), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, obj), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *catalogoCore[E, T]) GetByID(ctx context.Context, id uint, includeDeleted bool) (*dto.CatalogoResponse, error) {
	obj, err := s.sel(s.repo).GetByID(ctx, id, includeDeleted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogoNoEncontrado
		}
		s.logger.Error("consultar registro de catálogo falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(ctx, obj), nil
}

// ────────────────────── List ──────────────────────

func (s *catalogoCore[E, T]) List(ctx context.Context, req *dto.CatalogoListRequest) ([]dto.CatalogoResponse, int64, error) {
	filters := &repository.CatalogoListFilters{
		Q:                  req.Q,
		Activo:             req.Activo,
		DepartamentoID:     req.Departamento,
		DepartamentoNombre: req.DepartamentoNombre,
		IncludeDeleted:     req.IncludeDeleted,
		Deleted:            req.Deleted,
		Ordering:           req.Ordering,
		Offset:             req.GetOffset(),
		Limit:              req.GetPageSize(),
	}

	items, total, err := s.sel(s.repo).List(ctx, filters)
	if err != nil {
		s.logger.Error("listar catálogo falló", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CatalogoResponse, 0, len(items))
	for _, it := range items {
		result = append(result, *s.toResponse(ctx, it))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *catalogoCore[E, T]) Update(ctx context.Context, id uint, req *dto.UpdateCatalogoRequest, usuarioID *uint) (*dto.CatalogoResponse, error) {
	catRepo := s.sel(s.repo)

	obj, err := catRepo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogoNoEncontrado
		}
		s.logger.Error("consultar registro de catálogo falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	c := obj.Catalogo()

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if err := s.verificarNombre(ctx, catRepo, *req.Nombre, c.ID); err != nil {
			return nil, err
		}
		c.Nombre = *req.Nombre
	}
	if req.Clave != nil {
		switch {
		case *req.Clave == "":
			c.Clave = nil
		case c.Clave == nil || *req.Clave != *c.Clave:
			if err := s.verificarClave(ctx, catRepo, *req.Clave, c.ID); err != nil {
				return nil, err
			}
			c.Clave = req.Clave
		}
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}

	if p, ok := any(obj).(*model.Puesto); ok && req.Departamento != nil {
		if *req.Departamento == 0 {
			// departamento=0 desvincula el puesto
			p.DepartamentoID = nil
			p.Departamento = nil
		} else {
			if err := s.validarDepartamento(ctx, *req.Departamento); err != nil {
				return nil, err
			}
			p.DepartamentoID = req.Departamento
			p.Departamento = nil
		}
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.sel(tx).Update(ctx, obj); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, obj, model.CambioUpdated, usuarioID)
	})
	if err != nil {
		s.logger.Error("actualizar registro de catálogo falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, obj), nil
}

// ────────────────────── SoftDelete ──────────────────────

func (s *catalogoCore[E, T]) SoftDelete(ctx context.Context, id uint, usuarioID *uint) error {
	obj, err := s.sel(s.repo).GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCatalogoNoEncontrado
		}
		return err
	}

	nullify, err := s.aplicarPoliticaDepartamento(ctx, obj, false)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if nullify {
			if err := tx.PuestoVinculo.NullifyDepartamento(ctx, obj.Catalogo().ID, false); err != nil {
				return err
			}
		}
		if err := s.sel(tx).SoftDelete(ctx, obj.Catalogo().ID); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, obj, model.CambioDeleted, usuarioID)
	})
	if err != nil {
		s.logger.Error("borrado lógico de catálogo falló", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

// ────────────────────── Restore ──────────────────────

func (s *catalogoCore[E, T]) Restore(ctx context.Context, id uint, usuarioID *uint) (*dto.CatalogoResponse, error) {
	catRepo := s.sel(s.repo)

	obj, err := catRepo.GetByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogoNoEncontrado
		}
		return nil, err
	}
	c := obj.Catalogo()
	if c.IsAlive() {
		return nil, ErrCatalogoNoEliminado
	}

	// Un registro vivo con el mismo nombre o clave bloquea la restauración
	if err := s.verificarRestauracion(ctx, catRepo, c); err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.sel(tx).Restore(ctx, c.ID); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, obj, model.CambioUpdated, usuarioID)
	})
	if err != nil {
		s.logger.Error("restaurar registro de catálogo falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	restored, err := catRepo.GetByID(ctx, c.ID, false)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, restored), nil
}

// ────────────────────── HardDelete ──────────────────────

func (s *catalogoCore[E, T]) HardDelete(ctx context.Context, id uint, usuarioID *uint) error {
	obj, err := s.sel(s.repo).GetByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCatalogoNoEncontrado
		}
		return err
	}

	nullify, err := s.aplicarPoliticaDepartamento(ctx, obj, true)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if nullify {
			if err := tx.PuestoVinculo.NullifyDepartamento(ctx, obj.Catalogo().ID, true); err != nil {
				return err
			}
		}
		// el snapshot se registra antes de destruir el renglón
		if err := s.registrarHistorial(ctx, tx, obj, model.CambioDeleted, usuarioID); err != nil {
			return err
		}
		return s.sel(tx).HardDelete(ctx, obj.Catalogo().ID)
	})
	if err != nil {
		// red de seguridad ante una vinculación concurrente: la llave
		// foránea pierde la carrera y se reporta como conflicto
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrDepartamentoConPuestos
		}
		s.logger.Error("borrado físico de catálogo falló", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

// ── Auxiliares internos ──

func (s *catalogoCore[E, T]) verificarUnicidad(ctx context.Context, catRepo repository.CatalogoRepository[T], nombre string, clave *string, selfID uint) error {
	if err := s.verificarNombre(ctx, catRepo, nombre, selfID); err != nil {
		return err
	}
	if clave != nil && *clave != "" {
		return s.verificarClave(ctx, catRepo, *clave, selfID)
	}
	return nil
}

func (s *catalogoCore[E, T]) verificarNombre(ctx context.Context, catRepo repository.CatalogoRepository[T], nombre string, selfID uint) error {
	existing, err := catRepo.GetByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("verificar nombre de catálogo falló", zap.Error(err))
		return err
	}
	if existing.Catalogo().ID != selfID {
		return ErrCatalogoNombreExiste
	}
	return nil
}

func (s *catalogoCore[E, T]) verificarClave(ctx context.Context, catRepo repository.CatalogoRepository[T], clave string, selfID uint) error {
	existing, err := catRepo.GetByClave(ctx, clave)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("verificar clave de catálogo falló", zap.Error(err))
		return err
	}
	if existing.Catalogo().ID != selfID {
		return ErrCatalogoClaveExiste
	}
	return nil
}

func (s *catalogoCore[E, T]) verificarRestauracion(ctx context.Context, catRepo repository.CatalogoRepository[T], c *model.CatalogoFields) error {
	if _, err := catRepo.GetByNombre(ctx, c.Nombre); err == nil {
		return ErrRestauracionConflicto
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if c.Clave != nil && *c.Clave != "" {
		if _, err := catRepo.GetByClave(ctx, *c.Clave); err == nil {
			return ErrRestauracionConflicto
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

func (s *catalogoCore[E, T]) validarDepartamento(ctx context.Context, id uint) error {
	if _, err := s.repo.Departamento.GetByID(ctx, id, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartamentoNoExiste
		}
		return err
	}
	return nil
}

// aplicarPoliticaDepartamento evalúa la política de borrado de un
// departamento con puestos vinculados; reporta si procede desvincular.
// En el borrado físico includeDeleted debe ser true: los puestos
// borrados lógicamente aún sostienen la llave foránea.
func (s *catalogoCore[E, T]) aplicarPoliticaDepartamento(ctx context.Context, obj T, includeDeleted bool) (nullify bool, err error) {
	if s.entidad != model.EntidadDepartamento {
		return false, nil
	}
	count, err := s.repo.PuestoVinculo.CountByDepartamento(ctx, obj.Catalogo().ID, includeDeleted)
	if err != nil {
		s.logger.Error("contar puestos vinculados falló", zap.Error(err))
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	if s.politica == config.PuestoDepartamentoNullify {
		return true, nil
	}
	return false, ErrDepartamentoConPuestos
}

func (s *catalogoCore[E, T]) registrarHistorial(ctx context.Context, tx *repository.Repository, obj T, tipo string, usuarioID *uint) error {
	if s.entidad == "" {
		return nil
	}
	snap, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return tx.Historial.Append(ctx, &model.Historial{
		Entidad:    s.entidad,
		RegistroID: obj.Catalogo().ID,
		TipoCambio: tipo,
		UsuarioID:  usuarioID,
		Fecha:      time.Now(),
		Snapshot:   snap,
	})
}

func (s *catalogoCore[E, T]) toResponse(ctx context.Context, obj T) *dto.CatalogoResponse {
	c := obj.Catalogo()
	resp := &dto.CatalogoResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Clave:     c.Clave,
		Activo:    c.Activo,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.DeletedAt.Valid {
		d := c.DeletedAt.Time.Format(time.RFC3339)
		resp.DeletedAt = &d
	}
	if p, ok := any(obj).(*model.Puesto); ok {
		resp.Departamento = p.DepartamentoID
		if p.Departamento != nil {
			resp.DepartamentoNombre = &p.Departamento.Nombre
		} else if p.DepartamentoID != nil {
			if d, err := s.repo.Departamento.GetByID(ctx, *p.DepartamentoID, true); err == nil {
				resp.DepartamentoNombre = &d.Nombre
			}
		}
	}
	return resp
}
