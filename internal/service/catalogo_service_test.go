package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/netrok/rh-api/config"
	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/model"
)

// ── Auxiliares de prueba ──

func setupCatalogoServices(politica string) (*testRepos, CatalogoService, CatalogoService, CatalogoService) {
	repos := newTestRepos()
	cfg := &config.Config{}
	cfg.Catalog.PuestoDepartamentoPolicy = politica
	logger := zap.NewNop()
	deptoSvc := NewDepartamentoService(cfg, repos.repo, logger)
	puestoSvc := NewPuestoService(repos.repo, logger)
	turnoSvc := NewTurnoService(repos.repo, logger)
	return repos, deptoSvc, puestoSvc, turnoSvc
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
func boolPtr(b bool) *bool    { return &b }

// ── Create ──

func TestCatalogoService_Create_Exito(t *testing.T) {
	repos, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)

	req := &dto.CreateCatalogoRequest{Nombre: "Recursos Humanos", Clave: strPtr("RH")}
	result, err := deptoSvc.Create(context.Background(), req, uintPtr(1))
	if err != nil {
		t.Fatalf("Create debería funcionar: %v", err)
	}
	if result.Nombre != "Recursos Humanos" {
		t.Errorf("se esperaba Nombre=Recursos Humanos, se obtuvo %s", result.Nombre)
	}
	if result.Clave == nil || *result.Clave != "RH" {
		t.Errorf("se esperaba Clave=RH, se obtuvo %v", result.Clave)
	}
	if !result.Activo {
		t.Error("se esperaba Activo=true por defecto")
	}

	// Historial: una entrada created para departamentos
	entradas, _ := repos.historial.ListByEntidad(context.Background(), model.EntidadDepartamento, result.ID)
	if len(entradas) != 1 || entradas[0].TipoCambio != model.CambioCreated {
		t.Errorf("se esperaba 1 entrada created en historial, se obtuvieron %d", len(entradas))
	}
}

func TestCatalogoService_Create_NombreExiste(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)

	ctx := context.Background()
	if _, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Sistemas"}, nil); err != nil {
		t.Fatalf("primer Create debería funcionar: %v", err)
	}
	_, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Sistemas"}, nil)
	if !errors.Is(err, ErrCatalogoNombreExiste) {
		t.Errorf("se esperaba ErrCatalogoNombreExiste, se obtuvo: %v", err)
	}
}

func TestCatalogoService_Create_ClaveExiste(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)

	ctx := context.Background()
	if _, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Ventas", Clave: strPtr("VTA")}, nil); err != nil {
		t.Fatalf("primer Create debería funcionar: %v", err)
	}
	_, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Ventas Foráneas", Clave: strPtr("VTA")}, nil)
	if !errors.Is(err, ErrCatalogoClaveExiste) {
		t.Errorf("se esperaba ErrCatalogoClaveExiste, se obtuvo: %v", err)
	}
}

func TestCatalogoService_Create_PuestoConDepartamento(t *testing.T) {
	_, deptoSvc, puestoSvc, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Operaciones"}, nil)
	if err != nil {
		t.Fatalf("crear departamento debería funcionar: %v", err)
	}

	puesto, err := puestoSvc.Create(ctx, &dto.CreateCatalogoRequest{
		Nombre:       "Analista",
		Departamento: uintPtr(depto.ID),
	}, nil)
	if err != nil {
		t.Fatalf("crear puesto debería funcionar: %v", err)
	}
	if puesto.Departamento == nil || *puesto.Departamento != depto.ID {
		t.Errorf("se esperaba departamento=%d, se obtuvo %v", depto.ID, puesto.Departamento)
	}
	if puesto.DepartamentoNombre == nil || *puesto.DepartamentoNombre != "Operaciones" {
		t.Errorf("se esperaba departamento_nombre=Operaciones, se obtuvo %v", puesto.DepartamentoNombre)
	}
}

func TestCatalogoService_Create_PuestoDepartamentoInexistente(t *testing.T) {
	_, _, puestoSvc, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)

	_, err := puestoSvc.Create(context.Background(), &dto.CreateCatalogoRequest{
		Nombre:       "Analista",
		Departamento: uintPtr(999),
	}, nil)
	if !errors.Is(err, ErrDepartamentoNoExiste) {
		t.Errorf("se esperaba ErrDepartamentoNoExiste, se obtuvo: %v", err)
	}
}

// ── Update ──

func TestCatalogoService_Update_NombreEnConflicto(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	a, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Compras"}, nil)
	if _, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Almacén"}, nil); err != nil {
		t.Fatalf("Create debería funcionar: %v", err)
	}

	_, err := deptoSvc.Update(ctx, a.ID, &dto.UpdateCatalogoRequest{Nombre: strPtr("Almacén")}, nil)
	if !errors.Is(err, ErrCatalogoNombreExiste) {
		t.Errorf("se esperaba ErrCatalogoNombreExiste, se obtuvo: %v", err)
	}
}

func TestCatalogoService_Update_LimpiaClave(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Nóminas", Clave: strPtr("NOM")}, nil)
	updated, err := deptoSvc.Update(ctx, depto.ID, &dto.UpdateCatalogoRequest{Clave: strPtr("")}, nil)
	if err != nil {
		t.Fatalf("Update debería funcionar: %v", err)
	}
	if updated.Clave != nil {
		t.Errorf("clave vacía debería limpiar el campo, se obtuvo %v", *updated.Clave)
	}
}

func TestCatalogoService_Update_NoEncontrado(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)

	_, err := deptoSvc.Update(context.Background(), 999, &dto.UpdateCatalogoRequest{Nombre: strPtr("X Y")}, nil)
	if !errors.Is(err, ErrCatalogoNoEncontrado) {
		t.Errorf("se esperaba ErrCatalogoNoEncontrado, se obtuvo: %v", err)
	}
}

// ── SoftDelete / política de departamentos ──

func TestCatalogoService_SoftDelete_DepartamentoConPuestos_Block(t *testing.T) {
	_, deptoSvc, puestoSvc, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Producción"}, nil)
	if _, err := puestoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Operador", Departamento: uintPtr(depto.ID)}, nil); err != nil {
		t.Fatalf("crear puesto debería funcionar: %v", err)
	}

	err := deptoSvc.SoftDelete(ctx, depto.ID, nil)
	if !errors.Is(err, ErrDepartamentoConPuestos) {
		t.Errorf("con política block se esperaba ErrDepartamentoConPuestos, se obtuvo: %v", err)
	}
}

func TestCatalogoService_SoftDelete_DepartamentoConPuestos_Nullify(t *testing.T) {
	repos, deptoSvc, puestoSvc, _ := setupCatalogoServices(config.PuestoDepartamentoNullify)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Producción"}, nil)
	puesto, _ := puestoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Operador", Departamento: uintPtr(depto.ID)}, nil)

	if err := deptoSvc.SoftDelete(ctx, depto.ID, nil); err != nil {
		t.Fatalf("con política nullify el borrado debería funcionar: %v", err)
	}

	desvinculado := repos.puestos.items[puesto.ID]
	if desvinculado.DepartamentoID != nil {
		t.Error("el puesto debería quedar desvinculado del departamento")
	}
}

func TestCatalogoService_SoftDelete_RegistraHistorial(t *testing.T) {
	repos, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Calidad"}, uintPtr(7))
	if err := deptoSvc.SoftDelete(ctx, depto.ID, uintPtr(7)); err != nil {
		t.Fatalf("SoftDelete debería funcionar: %v", err)
	}

	entradas, _ := repos.historial.ListByEntidad(ctx, model.EntidadDepartamento, depto.ID)
	if len(entradas) != 2 {
		t.Fatalf("se esperaban 2 entradas de historial, se obtuvieron %d", len(entradas))
	}
	if entradas[0].TipoCambio != model.CambioDeleted {
		t.Errorf("la última entrada debería ser deleted, se obtuvo %s", entradas[0].TipoCambio)
	}
	if entradas[0].UsuarioID == nil || *entradas[0].UsuarioID != 7 {
		t.Errorf("el historial debería registrar al usuario 7, se obtuvo %v", entradas[0].UsuarioID)
	}
}

func TestCatalogoService_Turno_SinHistorial(t *testing.T) {
	repos, _, _, turnoSvc := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	turno, err := turnoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Matutino"}, nil)
	if err != nil {
		t.Fatalf("Create debería funcionar: %v", err)
	}
	if len(repos.historial.entradas) != 0 {
		t.Errorf("los turnos no llevan historial, se obtuvieron %d entradas", len(repos.historial.entradas))
	}
	_ = turno
}

// ── Restore ──

func TestCatalogoService_Restore_Exito(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Logística"}, nil)
	if err := deptoSvc.SoftDelete(ctx, depto.ID, nil); err != nil {
		t.Fatalf("SoftDelete debería funcionar: %v", err)
	}

	restored, err := deptoSvc.Restore(ctx, depto.ID, nil)
	if err != nil {
		t.Fatalf("Restore debería funcionar: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Error("el registro restaurado no debería traer deleted_at")
	}
}

func TestCatalogoService_Restore_NoEliminado(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Logística"}, nil)
	_, err := deptoSvc.Restore(ctx, depto.ID, nil)
	if !errors.Is(err, ErrCatalogoNoEliminado) {
		t.Errorf("se esperaba ErrCatalogoNoEliminado, se obtuvo: %v", err)
	}
}

func TestCatalogoService_Restore_ConflictoConVivo(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Finanzas"}, nil)
	if err := deptoSvc.SoftDelete(ctx, depto.ID, nil); err != nil {
		t.Fatalf("SoftDelete debería funcionar: %v", err)
	}
	// Un registro vivo toma el mismo nombre mientras el original está eliminado
	if _, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Finanzas"}, nil); err != nil {
		t.Fatalf("Create con el nombre liberado debería funcionar: %v", err)
	}

	_, err := deptoSvc.Restore(ctx, depto.ID, nil)
	if !errors.Is(err, ErrRestauracionConflicto) {
		t.Errorf("se esperaba ErrRestauracionConflicto, se obtuvo: %v", err)
	}
}

// ── HardDelete ──

func TestCatalogoService_HardDelete_RegistraSnapshotAntes(t *testing.T) {
	repos, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Temporal"}, nil)
	if err := deptoSvc.HardDelete(ctx, depto.ID, nil); err != nil {
		t.Fatalf("HardDelete debería funcionar: %v", err)
	}

	if _, ok := repos.deptos.items[depto.ID]; ok {
		t.Error("el registro debería haberse destruido")
	}
	entradas, _ := repos.historial.ListByEntidad(ctx, model.EntidadDepartamento, depto.ID)
	if len(entradas) != 2 || entradas[0].TipoCambio != model.CambioDeleted {
		t.Errorf("el historial debería conservar el snapshot previo al borrado físico")
	}
}

func TestCatalogoService_HardDelete_PuestoEliminadoBloquea(t *testing.T) {
	_, deptoSvc, puestoSvc, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Mantenimiento"}, nil)
	puesto, _ := puestoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Mecánico", Departamento: uintPtr(depto.ID)}, nil)
	if err := puestoSvc.SoftDelete(ctx, puesto.ID, nil); err != nil {
		t.Fatalf("SoftDelete del puesto debería funcionar: %v", err)
	}

	// El puesto borrado lógicamente aún sostiene la llave foránea: el
	// borrado físico del departamento debe bloquearse
	err := deptoSvc.HardDelete(ctx, depto.ID, nil)
	if !errors.Is(err, ErrDepartamentoConPuestos) {
		t.Errorf("se esperaba ErrDepartamentoConPuestos, se obtuvo: %v", err)
	}

	// El borrado lógico solo considera puestos vivos y sí procede
	if err := deptoSvc.SoftDelete(ctx, depto.ID, nil); err != nil {
		t.Errorf("el borrado lógico debería funcionar sin puestos vivos: %v", err)
	}
}

func TestCatalogoService_HardDelete_NullifyDesvinculaEliminados(t *testing.T) {
	repos, deptoSvc, puestoSvc, _ := setupCatalogoServices(config.PuestoDepartamentoNullify)
	ctx := context.Background()

	depto, _ := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Almacén"}, nil)
	puesto, _ := puestoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Almacenista", Departamento: uintPtr(depto.ID)}, nil)
	if err := puestoSvc.SoftDelete(ctx, puesto.ID, nil); err != nil {
		t.Fatalf("SoftDelete del puesto debería funcionar: %v", err)
	}

	if err := deptoSvc.HardDelete(ctx, depto.ID, nil); err != nil {
		t.Fatalf("con política nullify el borrado físico debería funcionar: %v", err)
	}

	desvinculado := repos.puestos.items[puesto.ID]
	if desvinculado.DepartamentoID != nil {
		t.Error("el puesto borrado también debería quedar desvinculado")
	}
}

// ── List ──

func TestCatalogoService_List_FiltroActivo(t *testing.T) {
	_, deptoSvc, _, _ := setupCatalogoServices(config.PuestoDepartamentoBlock)
	ctx := context.Background()

	if _, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Activo Uno"}, nil); err != nil {
		t.Fatalf("Create debería funcionar: %v", err)
	}
	if _, err := deptoSvc.Create(ctx, &dto.CreateCatalogoRequest{Nombre: "Inactivo Uno", Activo: boolPtr(false)}, nil); err != nil {
		t.Fatalf("Create debería funcionar: %v", err)
	}

	items, total, err := deptoSvc.List(ctx, &dto.CatalogoListRequest{Activo: boolPtr(true)})
	if err != nil {
		t.Fatalf("List debería funcionar: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Nombre != "Activo Uno" {
		t.Errorf("se esperaba solo el registro activo, total=%d", total)
	}
}
