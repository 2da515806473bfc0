package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/netrok/rh-api/internal/model"
	"github.com/netrok/rh-api/internal/repository"
)

// ── Mock genérico de CatalogoRepository ──

type mockCatalogoRepo[E any, T catPtr[E]] struct {
	items map[uint]T
	seq   uint
}

func newMockCatalogoRepo[E any, T catPtr[E]]() *mockCatalogoRepo[E, T] {
	return &mockCatalogoRepo[E, T]{items: make(map[uint]T)}
}

func (m *mockCatalogoRepo[E, T]) Create(_ context.Context, ent T) error {
	m.seq++
	c := ent.Catalogo()
	c.ID = m.seq
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	m.items[c.ID] = ent
	return nil
}

func (m *mockCatalogoRepo[E, T]) GetByID(_ context.Context, id uint, includeDeleted bool) (T, error) {
	var zero T
	ent, ok := m.items[id]
	if !ok {
		return zero, gorm.ErrRecordNotFound
	}
	if !includeDeleted && ent.Catalogo().DeletedAt.Valid {
		return zero, gorm.ErrRecordNotFound
	}
	return ent, nil
}

func (m *mockCatalogoRepo[E, T]) GetByNombre(_ context.Context, nombre string) (T, error) {
	var zero T
	for _, ent := range m.items {
		c := ent.Catalogo()
		if !c.DeletedAt.Valid && c.Nombre == nombre {
			return ent, nil
		}
	}
	return zero, gorm.ErrRecordNotFound
}

func (m *mockCatalogoRepo[E, T]) GetByClave(_ context.Context, clave string) (T, error) {
	var zero T
	for _, ent := range m.items {
		c := ent.Catalogo()
		if !c.DeletedAt.Valid && c.Clave != nil && *c.Clave == clave {
			return ent, nil
		}
	}
	return zero, gorm.ErrRecordNotFound
}

func (m *mockCatalogoRepo[E, T]) List(_ context.Context, f *repository.CatalogoListFilters) ([]T, int64, error) {
	var result []T
	for _, ent := range m.items {
		c := ent.Catalogo()
		if !f.IncludeDeleted && c.DeletedAt.Valid {
			continue
		}
		if f.Deleted != nil && *f.Deleted != c.DeletedAt.Valid {
			continue
		}
		if f.Activo != nil && *f.Activo != c.Activo {
			continue
		}
		if f.Q != "" && !strings.Contains(strings.ToLower(c.Nombre), strings.ToLower(f.Q)) {
			continue
		}
		result = append(result, ent)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Catalogo().ID < result[j].Catalogo().ID
	})
	return result, int64(len(result)), nil
}

func (m *mockCatalogoRepo[E, T]) Update(_ context.Context, ent T) error {
	c := ent.Catalogo()
	if _, ok := m.items[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.UpdatedAt = time.Now()
	m.items[c.ID] = ent
	return nil
}

func (m *mockCatalogoRepo[E, T]) SoftDelete(_ context.Context, id uint) error {
	ent, ok := m.items[id]
	if !ok || ent.Catalogo().DeletedAt.Valid {
		return gorm.ErrRecordNotFound
	}
	ent.Catalogo().DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (m *mockCatalogoRepo[E, T]) Restore(_ context.Context, id uint) error {
	ent, ok := m.items[id]
	if !ok || !ent.Catalogo().DeletedAt.Valid {
		return gorm.ErrRecordNotFound
	}
	ent.Catalogo().DeletedAt = gorm.DeletedAt{}
	return nil
}

func (m *mockCatalogoRepo[E, T]) HardDelete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

// ── Mock PuestoVinculoRepository ──

type mockPuestoVinculoRepo struct {
	puestos *mockCatalogoRepo[model.Puesto, *model.Puesto]
}

func (m *mockPuestoVinculoRepo) CountByDepartamento(_ context.Context, deptoID uint, includeDeleted bool) (int64, error) {
	var count int64
	for _, p := range m.puestos.items {
		if !includeDeleted && p.DeletedAt.Valid {
			continue
		}
		if p.DepartamentoID != nil && *p.DepartamentoID == deptoID {
			count++
		}
	}
	return count, nil
}

func (m *mockPuestoVinculoRepo) NullifyDepartamento(_ context.Context, deptoID uint, includeDeleted bool) error {
	for _, p := range m.puestos.items {
		if !includeDeleted && p.DeletedAt.Valid {
			continue
		}
		if p.DepartamentoID != nil && *p.DepartamentoID == deptoID {
			p.DepartamentoID = nil
			p.Departamento = nil
		}
	}
	return nil
}

// ── Mock EmpleadoRepository ──

type mockEmpleadoRepo struct {
	empleados map[uint]*model.Empleado
	seq       uint
}

func newMockEmpleadoRepo() *mockEmpleadoRepo {
	return &mockEmpleadoRepo{empleados: make(map[uint]*model.Empleado)}
}

func (m *mockEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	m.seq++
	e.ID = m.seq
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	m.empleados[e.ID] = e
	return nil
}

func (m *mockEmpleadoRepo) GetByID(_ context.Context, id uint, includeDeleted bool) (*model.Empleado, error) {
	e, ok := m.empleados[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if !includeDeleted && e.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	// copia: el servicio muta el resultado antes de llamar Update,
	// igual que con una fila recién leída de la base
	copia := *e
	return &copia, nil
}

func (m *mockEmpleadoRepo) buscarVivo(pred func(*model.Empleado) bool) (*model.Empleado, error) {
	for _, e := range m.empleados {
		if !e.DeletedAt.Valid && pred(e) {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmpleadoRepo) GetByNumEmpleado(_ context.Context, num string) (*model.Empleado, error) {
	return m.buscarVivo(func(e *model.Empleado) bool { return e.NumEmpleado == num })
}

func (m *mockEmpleadoRepo) GetByCURP(_ context.Context, curp string) (*model.Empleado, error) {
	return m.buscarVivo(func(e *model.Empleado) bool { return e.CURP != nil && *e.CURP == curp })
}

func (m *mockEmpleadoRepo) GetByRFC(_ context.Context, rfc string) (*model.Empleado, error) {
	return m.buscarVivo(func(e *model.Empleado) bool { return e.RFC != nil && *e.RFC == rfc })
}

func (m *mockEmpleadoRepo) GetByNSS(_ context.Context, nss string) (*model.Empleado, error) {
	return m.buscarVivo(func(e *model.Empleado) bool { return e.NSS != nil && *e.NSS == nss })
}

func (m *mockEmpleadoRepo) List(_ context.Context, f *repository.EmpleadoListFilters) ([]model.Empleado, int64, error) {
	var result []model.Empleado
	for _, e := range m.empleados {
		if !f.IncludeDeleted && e.DeletedAt.Valid {
			continue
		}
		if f.Deleted != nil && *f.Deleted != e.DeletedAt.Valid {
			continue
		}
		if f.Activo != nil && *f.Activo != e.Activo {
			continue
		}
		if f.DepartamentoID != nil && (e.DepartamentoID == nil || *e.DepartamentoID != *f.DepartamentoID) {
			continue
		}
		if f.Q != "" {
			q := strings.ToLower(f.Q)
			if !strings.Contains(strings.ToLower(e.NumEmpleado), q) &&
				!strings.Contains(strings.ToLower(e.Nombres), q) &&
				!strings.Contains(strings.ToLower(e.ApellidoPaterno), q) {
				continue
			}
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NumEmpleado < result[j].NumEmpleado })
	total := int64(len(result))
	if f.Limit > 0 {
		if f.Offset >= len(result) {
			return nil, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(result) {
			end = len(result)
		}
		result = result[f.Offset:end]
	}
	return result, total, nil
}

func (m *mockEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	if _, ok := m.empleados[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	e.UpdatedAt = time.Now()
	m.empleados[e.ID] = e
	return nil
}

func (m *mockEmpleadoRepo) SoftDelete(_ context.Context, id uint) error {
	e, ok := m.empleados[id]
	if !ok || e.DeletedAt.Valid {
		return gorm.ErrRecordNotFound
	}
	e.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (m *mockEmpleadoRepo) Restore(_ context.Context, id uint) error {
	e, ok := m.empleados[id]
	if !ok || !e.DeletedAt.Valid {
		return gorm.ErrRecordNotFound
	}
	e.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (m *mockEmpleadoRepo) HardDelete(_ context.Context, id uint) error {
	if _, ok := m.empleados[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.empleados, id)
	return nil
}

func (m *mockEmpleadoRepo) BulkSoftDelete(ctx context.Context, ids []uint) (int64, error) {
	var afectados int64
	for _, id := range ids {
		if m.SoftDelete(ctx, id) == nil {
			afectados++
		}
	}
	return afectados, nil
}

func (m *mockEmpleadoRepo) BulkRestore(ctx context.Context, ids []uint) (int64, error) {
	var afectados int64
	for _, id := range ids {
		if m.Restore(ctx, id) == nil {
			afectados++
		}
	}
	return afectados, nil
}

func (m *mockEmpleadoRepo) BulkHardDelete(ctx context.Context, ids []uint) (int64, error) {
	var afectados int64
	for _, id := range ids {
		if m.HardDelete(ctx, id) == nil {
			afectados++
		}
	}
	return afectados, nil
}

// ── Mock UsuarioRepository ──

type mockUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	seq      uint
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[uint]*model.Usuario)}
}

func (m *mockUsuarioRepo) agregar(u *model.Usuario) *model.Usuario {
	m.seq++
	u.ID = m.seq
	m.usuarios[u.ID] = u
	return u
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id uint) (*model.Usuario, error) {
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GroupNames(ctx context.Context, userID uint) ([]string, error) {
	u, err := m.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.GroupNames(), nil
}

// ── Mock HistorialRepository ──

type mockHistorialRepo struct {
	entradas []*model.Historial
	seq      uint
}

func newMockHistorialRepo() *mockHistorialRepo {
	return &mockHistorialRepo{}
}

func (m *mockHistorialRepo) Append(_ context.Context, h *model.Historial) error {
	m.seq++
	h.ID = m.seq
	m.entradas = append(m.entradas, h)
	return nil
}

func (m *mockHistorialRepo) ListByEntidad(_ context.Context, entidad string, registroID uint) ([]*model.Historial, error) {
	var result []*model.Historial
	// más reciente primero
	for i := len(m.entradas) - 1; i >= 0; i-- {
		h := m.entradas[i]
		if h.Entidad == entidad && h.RegistroID == registroID {
			result = append(result, h)
		}
	}
	return result, nil
}

// ── Agregado de repos para pruebas ──

type testRepos struct {
	repo      *repository.Repository
	usuarios  *mockUsuarioRepo
	deptos    *mockCatalogoRepo[model.Departamento, *model.Departamento]
	puestos   *mockCatalogoRepo[model.Puesto, *model.Puesto]
	turnos    *mockCatalogoRepo[model.Turno, *model.Turno]
	horarios  *mockCatalogoRepo[model.Horario, *model.Horario]
	empleados *mockEmpleadoRepo
	historial *mockHistorialRepo
}

// newTestRepos arma un Repository sobre mocks; sin *gorm.DB las
// transacciones ejecutan el callback directamente
func newTestRepos() *testRepos {
	t := &testRepos{
		usuarios:  newMockUsuarioRepo(),
		deptos:    newMockCatalogoRepo[model.Departamento, *model.Departamento](),
		puestos:   newMockCatalogoRepo[model.Puesto, *model.Puesto](),
		turnos:    newMockCatalogoRepo[model.Turno, *model.Turno](),
		horarios:  newMockCatalogoRepo[model.Horario, *model.Horario](),
		empleados: newMockEmpleadoRepo(),
		historial: newMockHistorialRepo(),
	}
	t.repo = &repository.Repository{
		Usuario:       t.usuarios,
		Departamento:  t.deptos,
		Puesto:        t.puestos,
		Turno:         t.turnos,
		Horario:       t.horarios,
		PuestoVinculo: &mockPuestoVinculoRepo{puestos: t.puestos},
		Empleado:      t.empleados,
		Historial:     t.historial,
	}
	return t
}
