package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/model"
	"github.com/netrok/rh-api/internal/repository"
)

// ── Errores de negocio de empleados ──

var (
	ErrEmpleadoNoEncontrado          = errors.New("empleado no encontrado")
	ErrEmpleadoNoEliminado           = errors.New("el empleado no está eliminado")
	ErrNumEmpleadoExiste             = errors.New("ya existe un empleado vivo con ese número")
	ErrCURPExiste                    = errors.New("ya existe un empleado vivo con esa CURP")
	ErrRFCExiste                     = errors.New("ya existe un empleado vivo con ese RFC")
	ErrNSSExiste                     = errors.New("ya existe un empleado vivo con ese NSS")
	ErrEmpleadoDuplicado             = errors.New("identificadores de empleado duplicados entre vivos")
	ErrEmpleadoRestauracionConflicto = errors.New("un empleado vivo ya usa alguno de sus identificadores")
	ErrReferenciaCatalogoInvalida    = errors.New("referencia a catálogo inexistente o eliminado")
)

// EmpleadoService operaciones de negocio sobre empleados
type EmpleadoService interface {
	Create(ctx context.Context, req *dto.CreateEmpleadoRequest, usuarioID *uint) (*dto.EmpleadoResponse, error)
	GetByID(ctx context.Context, id uint, includeDeleted bool) (*dto.EmpleadoResponse, error)
	List(ctx context.Context, req *dto.EmpleadoListRequest) ([]dto.EmpleadoResponse, int64, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmpleadoRequest, usuarioID *uint) (*dto.EmpleadoResponse, error)
	SoftDelete(ctx context.Context, id uint, usuarioID *uint) error
	// Restore reactiva un empleado eliminado; falla con conflicto si un
	// empleado vivo ya tomó su número, CURP, RFC o NSS
	Restore(ctx context.Context, id uint, usuarioID *uint) (*dto.EmpleadoResponse, error)
	HardDelete(ctx context.Context, id uint, usuarioID *uint) error
	History(ctx context.Context, id uint) ([]dto.HistorialResponse, error)
	BulkSoftDelete(ctx context.Context, ids []uint) (*dto.BulkResponse, error)
	BulkRestore(ctx context.Context, ids []uint) (*dto.BulkResponse, error)
	BulkHardDelete(ctx context.Context, ids []uint) (*dto.BulkResponse, error)
}

type empleadoService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmpleadoService crea la instancia de EmpleadoService
func NewEmpleadoService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) EmpleadoService {
	return &empleadoService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *empleadoService) Create(ctx context.Context, req *dto.CreateEmpleadoRequest, usuarioID *uint) (*dto.EmpleadoResponse, error) {
	emp := &model.Empleado{
		NumEmpleado:     strings.TrimSpace(req.NumEmpleado),
		Nombres:         req.Nombres,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,

		Genero:      req.Genero,
		EstadoCivil: req.EstadoCivil,
		CURP:        normalizarMayusculas(req.CURP),
		RFC:         normalizarMayusculas(req.RFC),
		NSS:         req.NSS,
		Telefono:    req.Telefono,
		Celular:     req.Celular,
		Email:       normalizarMinusculas(req.Email),

		Calle:     req.Calle,
		Numero:    req.Numero,
		Colonia:   req.Colonia,
		Municipio: req.Municipio,
		Estado:    req.Estado,
		CP:        req.CP,

		DepartamentoID: req.Departamento,
		PuestoID:       req.Puesto,
		TurnoID:        req.Turno,
		HorarioID:      req.Horario,
		Activo:         true,
		Sueldo:         req.Sueldo,
		TipoContrato:   req.TipoContrato,
		TipoJornada:    req.TipoJornada,

		Banco:  req.Banco,
		CLABE:  req.CLABE,
		Cuenta: req.Cuenta,

		ContactoEmergenciaNombre:     req.ContactoEmergenciaNombre,
		ContactoEmergenciaParentesco: req.ContactoEmergenciaParentesco,
		ContactoEmergenciaTelefono:   req.ContactoEmergenciaTelefono,
		Escolaridad:                  req.Escolaridad,
		Notas:                        req.Notas,
		Foto:                         req.Foto,
	}
	if req.Activo != nil {
		emp.Activo = *req.Activo
	}

	var err error
	if emp.FechaNacimiento, err = parseFecha(req.FechaNacimiento); err != nil {
		return nil, err
	}
	if emp.FechaIngreso, err = parseFecha(req.FechaIngreso); err != nil {
		return nil, err
	}

	if err := s.verificarIdentificadores(ctx, emp, 0); err != nil {
		return nil, err
	}
	if err := s.validarReferencias(ctx, emp); err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Empleado.Create(ctx, emp); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, emp, model.CambioCreated, usuarioID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// carrera perdida contra otro alta concurrente
			return nil, ErrEmpleadoDuplicado
		}
		s.logger.Error("crear empleado falló", zap.Error(err))
		return nil, err
	}

	// Re-lectura con relaciones para resolver nombres de catálogo
	created, err := s.repo.Empleado.GetByID(ctx, emp.ID, false)
	if err != nil {
		return nil, err
	}
	return s.toResponse(created), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *empleadoService) GetByID(ctx context.Context, id uint, includeDeleted bool) (*dto.EmpleadoResponse, error) {
	emp, err := s.repo.Empleado.GetByID(ctx, id, includeDeleted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpleadoNoEncontrado
		}
		s.logger.Error("consultar empleado falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(emp), nil
}

// ────────────────────── List ──────────────────────

func (s *empleadoService) List(ctx context.Context, req *dto.EmpleadoListRequest) ([]dto.EmpleadoResponse, int64, error) {
	filters := s.toFilters(req)
	filters.Offset = req.GetOffset()
	filters.Limit = req.GetPageSize()

	items, total, err := s.repo.Empleado.List(ctx, filters)
	if err != nil {
		s.logger.Error("listar empleados falló", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EmpleadoResponse, 0, len(items))
	for i := range items {
		result = append(result, *s.toResponse(&items[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *empleadoService) Update(ctx context.Context, id uint, req *dto.UpdateEmpleadoRequest, usuarioID *uint) (*dto.EmpleadoResponse, error) {
	emp, err := s.repo.Empleado.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpleadoNoEncontrado
		}
		s.logger.Error("consultar empleado falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.aplicarCambios(emp, req); err != nil {
		return nil, err
	}
	if err := s.verificarIdentificadores(ctx, emp, emp.ID); err != nil {
		return nil, err
	}
	if err := s.validarReferencias(ctx, emp); err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Empleado.Update(ctx, emp); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, emp, model.CambioUpdated, usuarioID)
	})
	if err != nil {
		s.logger.Error("actualizar empleado falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Empleado.GetByID(ctx, emp.ID, false)
	if err != nil {
		return nil, err
	}
	return s.toResponse(updated), nil
}

// ────────────────────── SoftDelete / Restore / HardDelete ──────────────────────

func (s *empleadoService) SoftDelete(ctx context.Context, id uint, usuarioID *uint) error {
	emp, err := s.repo.Empleado.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmpleadoNoEncontrado
		}
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Empleado.SoftDelete(ctx, emp.ID); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, emp, model.CambioDeleted, usuarioID)
	})
	if err != nil {
		s.logger.Error("borrado lógico de empleado falló", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

func (s *empleadoService) Restore(ctx context.Context, id uint, usuarioID *uint) (*dto.EmpleadoResponse, error) {
	emp, err := s.repo.Empleado.GetByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpleadoNoEncontrado
		}
		return nil, err
	}
	if emp.IsAlive() {
		return nil, ErrEmpleadoNoEliminado
	}

	// Sus identificadores pudieron ser reutilizados mientras estuvo eliminado
	if err := s.verificarColisionRestauracion(ctx, emp); err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Empleado.Restore(ctx, emp.ID); err != nil {
			return err
		}
		return s.registrarHistorial(ctx, tx, emp, model.CambioUpdated, usuarioID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmpleadoRestauracionConflicto
		}
		s.logger.Error("restaurar empleado falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	restored, err := s.repo.Empleado.GetByID(ctx, emp.ID, false)
	if err != nil {
		return nil, err
	}
	return s.toResponse(restored), nil
}

func (s *empleadoService) HardDelete(ctx context.Context, id uint, usuarioID *uint) error {
	emp, err := s.repo.Empleado.GetByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmpleadoNoEncontrado
		}
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		// el snapshot se registra antes de destruir el renglón
		if err := s.registrarHistorial(ctx, tx, emp, model.CambioDeleted, usuarioID); err != nil {
			return err
		}
		return tx.Empleado.HardDelete(ctx, emp.ID)
	})
	if err != nil {
		s.logger.Error("borrado físico de empleado falló", zap.Uint("id", id), zap.Error(err))
	}
	return err
}

// ────────────────────── History ──────────────────────

func (s *empleadoService) History(ctx context.Context, id uint) ([]dto.HistorialResponse, error) {
	if _, err := s.repo.Empleado.GetByID(ctx, id, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpleadoNoEncontrado
		}
		return nil, err
	}

	entradas, err := s.repo.Historial.ListByEntidad(ctx, model.EntidadEmpleado, id)
	if err != nil {
		s.logger.Error("consultar historial falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.HistorialResponse, 0, len(entradas))
	for _, h := range entradas {
		result = append(result, s.toHistorialResponse(h))
	}
	return result, nil
}

// ────────────────────── Operaciones en lote ──────────────────────
//
// Las variantes en lote son actualizaciones de conjunto: no generan
// entradas de historial individuales, igual que las actualizaciones
// masivas del ORM de origen de los datos.

func (s *empleadoService) BulkSoftDelete(ctx context.Context, ids []uint) (*dto.BulkResponse, error) {
	afectados, err := s.repo.Empleado.BulkSoftDelete(ctx, ids)
	if err != nil {
		s.logger.Error("borrado lógico en lote falló", zap.Error(err))
		return nil, err
	}
	return &dto.BulkResponse{Affected: afectados}, nil
}

func (s *empleadoService) BulkRestore(ctx context.Context, ids []uint) (*dto.BulkResponse, error) {
	afectados, err := s.repo.Empleado.BulkRestore(ctx, ids)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmpleadoRestauracionConflicto
		}
		s.logger.Error("restauración en lote falló", zap.Error(err))
		return nil, err
	}
	return &dto.BulkResponse{Affected: afectados}, nil
}

func (s *empleadoService) BulkHardDelete(ctx context.Context, ids []uint) (*dto.BulkResponse, error) {
	afectados, err := s.repo.Empleado.BulkHardDelete(ctx, ids)
	if err != nil {
		s.logger.Error("borrado físico en lote falló", zap.Error(err))
		return nil, err
	}
	return &dto.BulkResponse{Affected: afectados}, nil
}

// ── Auxiliares internos ──

func normalizarMayusculas(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	return &v
}

func normalizarMinusculas(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	return &v
}

func parseFecha(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// aplicarCambios vuelca los campos presentes del request sobre el modelo
func (s *empleadoService) aplicarCambios(emp *model.Empleado, req *dto.UpdateEmpleadoRequest) error {
	if req.NumEmpleado != nil {
		emp.NumEmpleado = strings.TrimSpace(*req.NumEmpleado)
	}
	if req.Nombres != nil {
		emp.Nombres = *req.Nombres
	}
	if req.ApellidoPaterno != nil {
		emp.ApellidoPaterno = *req.ApellidoPaterno
	}
	if req.ApellidoMaterno != nil {
		emp.ApellidoMaterno = req.ApellidoMaterno
	}
	if req.FechaNacimiento != nil {
		f, err := parseFecha(req.FechaNacimiento)
		if err != nil {
			return err
		}
		emp.FechaNacimiento = f
	}
	if req.Genero != nil {
		emp.Genero = req.Genero
	}
	if req.EstadoCivil != nil {
		emp.EstadoCivil = req.EstadoCivil
	}
	if req.CURP != nil {
		emp.CURP = normalizarMayusculas(req.CURP)
	}
	if req.RFC != nil {
		emp.RFC = normalizarMayusculas(req.RFC)
	}
	if req.NSS != nil {
		emp.NSS = req.NSS
	}
	if req.Telefono != nil {
		emp.Telefono = req.Telefono
	}
	if req.Celular != nil {
		emp.Celular = req.Celular
	}
	if req.Email != nil {
		emp.Email = normalizarMinusculas(req.Email)
	}
	if req.Calle != nil {
		emp.Calle = req.Calle
	}
	if req.Numero != nil {
		emp.Numero = req.Numero
	}
	if req.Colonia != nil {
		emp.Colonia = req.Colonia
	}
	if req.Municipio != nil {
		emp.Municipio = req.Municipio
	}
	if req.Estado != nil {
		emp.Estado = req.Estado
	}
	if req.CP != nil {
		emp.CP = req.CP
	}
	if req.Departamento != nil {
		emp.DepartamentoID = idONulo(req.Departamento)
		emp.Departamento = nil
	}
	if req.Puesto != nil {
		emp.PuestoID = idONulo(req.Puesto)
		emp.Puesto = nil
	}
	if req.Turno != nil {
		emp.TurnoID = idONulo(req.Turno)
		emp.Turno = nil
	}
	if req.Horario != nil {
		emp.HorarioID = idONulo(req.Horario)
		emp.Horario = nil
	}
	if req.FechaIngreso != nil {
		f, err := parseFecha(req.FechaIngreso)
		if err != nil {
			return err
		}
		emp.FechaIngreso = f
	}
	if req.Activo != nil {
		emp.Activo = *req.Activo
	}
	if req.Sueldo != nil {
		emp.Sueldo = req.Sueldo
	}
	if req.TipoContrato != nil {
		emp.TipoContrato = req.TipoContrato
	}
	if req.TipoJornada != nil {
		emp.TipoJornada = req.TipoJornada
	}
	if req.Banco != nil {
		emp.Banco = req.Banco
	}
	if req.CLABE != nil {
		emp.CLABE = normalizarMayusculas(req.CLABE)
	}
	if req.Cuenta != nil {
		emp.Cuenta = req.Cuenta
	}
	if req.ContactoEmergenciaNombre != nil {
		emp.ContactoEmergenciaNombre = req.ContactoEmergenciaNombre
	}
	if req.ContactoEmergenciaParentesco != nil {
		emp.ContactoEmergenciaParentesco = req.ContactoEmergenciaParentesco
	}
	if req.ContactoEmergenciaTelefono != nil {
		emp.ContactoEmergenciaTelefono = req.ContactoEmergenciaTelefono
	}
	if req.Escolaridad != nil {
		emp.Escolaridad = req.Escolaridad
	}
	if req.Notas != nil {
		emp.Notas = req.Notas
	}
	if req.Foto != nil {
		emp.Foto = req.Foto
	}
	return nil
}

// idONulo id=0 rompe el vínculo al catálogo
func idONulo(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

// verificarIdentificadores pre-verifica unicidad entre vivos; selfID
// excluye al propio registro en modificaciones
func (s *empleadoService) verificarIdentificadores(ctx context.Context, emp *model.Empleado, selfID uint) error {
	type chequeo struct {
		valor  *string
		lookup func(context.Context, string) (*model.Empleado, error)
		errDup error
	}
	num := emp.NumEmpleado
	checks := []chequeo{
		{&num, s.repo.Empleado.GetByNumEmpleado, ErrNumEmpleadoExiste},
		{emp.CURP, s.repo.Empleado.GetByCURP, ErrCURPExiste},
		{emp.RFC, s.repo.Empleado.GetByRFC, ErrRFCExiste},
		{emp.NSS, s.repo.Empleado.GetByNSS, ErrNSSExiste},
	}
	for _, c := range checks {
		if c.valor == nil || *c.valor == "" {
			continue
		}
		existing, err := c.lookup(ctx, *c.valor)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Error("verificar identificador de empleado falló", zap.Error(err))
			return err
		}
		if existing.ID != selfID {
			return c.errDup
		}
	}
	return nil
}

func (s *empleadoService) verificarColisionRestauracion(ctx context.Context, emp *model.Empleado) error {
	if err := s.verificarIdentificadores(ctx, emp, emp.ID); err != nil {
		switch err {
		case ErrNumEmpleadoExiste, ErrCURPExiste, ErrRFCExiste, ErrNSSExiste:
			return ErrEmpleadoRestauracionConflicto
		}
		return err
	}
	return nil
}

// validarReferencias comprueba que los catálogos referidos existan vivos
func (s *empleadoService) validarReferencias(ctx context.Context, emp *model.Empleado) error {
	if emp.DepartamentoID != nil {
		if _, err := s.repo.Departamento.GetByID(ctx, *emp.DepartamentoID, false); err != nil {
			return s.refError(err)
		}
	}
	if emp.PuestoID != nil {
		if _, err := s.repo.Puesto.GetByID(ctx, *emp.PuestoID, false); err != nil {
			return s.refError(err)
		}
	}
	if emp.TurnoID != nil {
		if _, err := s.repo.Turno.GetByID(ctx, *emp.TurnoID, false); err != nil {
			return s.refError(err)
		}
	}
	if emp.HorarioID != nil {
		if _, err := s.repo.Horario.GetByID(ctx, *emp.HorarioID, false); err != nil {
			return s.refError(err)
		}
	}
	return nil
}

func (s *empleadoService) refError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReferenciaCatalogoInvalida
	}
	s.logger.Error("validar referencia a catálogo falló", zap.Error(err))
	return err
}

func (s *empleadoService) registrarHistorial(ctx context.Context, tx *repository.Repository, emp *model.Empleado, tipo string, usuarioID *uint) error {
	snap, err := json.Marshal(emp)
	if err != nil {
		return err
	}
	return tx.Historial.Append(ctx, &model.Historial{
		Entidad:    model.EntidadEmpleado,
		RegistroID: emp.ID,
		TipoCambio: tipo,
		UsuarioID:  usuarioID,
		Fecha:      time.Now(),
		Snapshot:   snap,
	})
}

func (s *empleadoService) toFilters(req *dto.EmpleadoListRequest) *repository.EmpleadoListFilters {
	return &repository.EmpleadoListFilters{
		Q:                  req.Q,
		Activo:             req.Activo,
		DepartamentoID:     req.Departamento,
		PuestoID:           req.Puesto,
		DepartamentoNombre: req.DepartamentoNombre,
		PuestoNombre:       req.PuestoNombre,
		Genero:             req.Genero,
		IncludeDeleted:     req.IncludeDeleted,
		Deleted:            req.Deleted,
		Ordering:           req.Ordering,
	}
}

func (s *empleadoService) toResponse(emp *model.Empleado) *dto.EmpleadoResponse {
	resp := &dto.EmpleadoResponse{
		ID:              emp.ID,
		NumEmpleado:     emp.NumEmpleado,
		Nombres:         emp.Nombres,
		ApellidoPaterno: emp.ApellidoPaterno,
		ApellidoMaterno: emp.ApellidoMaterno,

		FechaNacimiento:    formatearFecha(emp.FechaNacimiento),
		Genero:             emp.Genero,
		GeneroDisplay:      display(emp.Genero, model.GeneroDisplay),
		EstadoCivil:        emp.EstadoCivil,
		EstadoCivilDisplay: display(emp.EstadoCivil, model.EstadoCivilDisplay),
		CURP:               emp.CURP,
		RFC:                emp.RFC,
		NSS:                emp.NSS,
		Telefono:           emp.Telefono,
		Celular:            emp.Celular,
		Email:              emp.Email,

		Calle:     emp.Calle,
		Numero:    emp.Numero,
		Colonia:   emp.Colonia,
		Municipio: emp.Municipio,
		Estado:    emp.Estado,
		CP:        emp.CP,

		DepartamentoID: emp.DepartamentoID,
		PuestoID:       emp.PuestoID,
		TurnoID:        emp.TurnoID,
		HorarioID:      emp.HorarioID,

		FechaIngreso: formatearFecha(emp.FechaIngreso),
		Activo:       emp.Activo,
		Sueldo:       emp.Sueldo,
		TipoContrato: emp.TipoContrato,
		TipoJornada:  emp.TipoJornada,

		Banco:  emp.Banco,
		CLABE:  emp.CLABE,
		Cuenta: emp.Cuenta,

		ContactoEmergenciaNombre:     emp.ContactoEmergenciaNombre,
		ContactoEmergenciaParentesco: emp.ContactoEmergenciaParentesco,
		ContactoEmergenciaTelefono:   emp.ContactoEmergenciaTelefono,
		Escolaridad:                  emp.Escolaridad,
		Notas:                        emp.Notas,

		Foto:    emp.Foto,
		FotoURL: s.fotoURL(emp.Foto),

		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.DeletedAt.Valid {
		d := emp.DeletedAt.Time.Format(time.RFC3339)
		resp.DeletedAt = &d
	}
	if emp.Departamento != nil {
		resp.DepartamentoNombre = &emp.Departamento.Nombre
	}
	if emp.Puesto != nil {
		resp.PuestoNombre = &emp.Puesto.Nombre
	}
	if emp.Turno != nil {
		resp.TurnoNombre = &emp.Turno.Nombre
	}
	if emp.Horario != nil {
		resp.HorarioNombre = &emp.Horario.Nombre
	}
	return resp
}

func (s *empleadoService) toHistorialResponse(h *model.Historial) dto.HistorialResponse {
	resp := dto.HistorialResponse{
		HistoryID:   h.ID,
		HistoryDate: h.Fecha.Format(time.RFC3339),
		HistoryType: h.TipoCambio,
		Snapshot:    json.RawMessage(h.Snapshot),
	}
	if h.Usuario != nil {
		resp.HistoryUser = &h.Usuario.Username
	}

	// Proyección de negocio tomada del snapshot
	var snap model.Empleado
	if err := json.Unmarshal(h.Snapshot, &snap); err == nil {
		resp.NumEmpleado = snap.NumEmpleado
		resp.Nombres = snap.Nombres
		apellidos := snap.ApellidoPaterno
		if snap.ApellidoMaterno != nil && *snap.ApellidoMaterno != "" {
			apellidos += " " + *snap.ApellidoMaterno
		}
		resp.Apellidos = apellidos
		resp.DepartamentoID = snap.DepartamentoID
		resp.PuestoID = snap.PuestoID
		activo := snap.Activo
		resp.Activo = &activo
		if snap.DeletedAt.Valid {
			d := snap.DeletedAt.Time.Format(time.RFC3339)
			resp.DeletedAt = &d
		}
	}
	return resp
}

func (s *empleadoService) fotoURL(foto *string) *string {
	if foto == nil || *foto == "" {
		return nil
	}
	base := strings.TrimRight(s.cfg.Media.BaseURL, "/")
	if base == "" {
		return foto
	}
	url := base + "/" + strings.TrimLeft(*foto, "/")
	return &url
}

func formatearFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	f := t.Format("2006-01-02")
	return &f
}

func display(valor *string, etiquetas map[string]string) *string {
	if valor == nil {
		return nil
	}
	if d, ok := etiquetas[*valor]; ok {
		return &d
	}
	return nil
}
