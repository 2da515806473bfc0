package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/netrok/rh-api/internal/dto"
	"github.com/netrok/rh-api/internal/model"
	"github.com/netrok/rh-api/internal/repository"
)

// ── Errores del módulo de exportación ──

var (
	ErrExportGenerateFail = errors.New("generar archivo Excel falló")
)

// ExportService exportación de empleados a Excel (.xlsx).
// Aplica los mismos filtros/búsqueda/orden del listado pero ignora la
// paginación: siempre exporta el conjunto filtrado completo. El buffer
// se devuelve al handler, que fija los encabezados HTTP de descarga.
type ExportService interface {
	ExportEmpleados(ctx context.Context, req *dto.EmpleadoListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crea la instancia de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var exportHeaders = []string{
	"ID", "Num. empleado", "Nombres", "Apellido paterno", "Apellido materno",
	"Departamento", "Puesto", "Fecha ingreso", "Email", "Teléfono", "Activo",
}

const exportSheet = "Empleados"
const exportMaxColWidth = 40

func (s *exportService) ExportEmpleados(ctx context.Context, req *dto.EmpleadoListRequest) (*bytes.Buffer, string, error) {
	// Conjunto filtrado completo: sin límite ni offset
	filters := &repository.EmpleadoListFilters{
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

	empleados, _, err := s.repo.Empleado.List(ctx, filters)
	if err != nil {
		s.logger.Error("consultar empleados para exportar falló", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	// Encabezado en negritas
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, first, last, headerStyle)

	// Anchos: arrancan con el largo del encabezado
	widths := make([]int, len(exportHeaders))
	for i, h := range exportHeaders {
		widths[i] = len([]rune(h))
	}

	for rowIdx := range empleados {
		emp := &empleados[rowIdx]
		valores := exportRow(emp)
		for colIdx, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(exportSheet, cell, v)
			if l := len([]rune(fmt.Sprint(v))); l > widths[colIdx] {
				widths[colIdx] = l
			}
		}
	}

	// Ajuste de ancho con tope
	for i, w := range widths {
		if w > exportMaxColWidth {
			w = exportMaxColWidth
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, col, col, float64(w)+2)
	}

	// Encabezado congelado
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		s.logger.Warn("congelar encabezado falló", zap.Error(err))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("escribir Excel falló", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("empleados_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// exportRow proyección de columnas de un empleado
func exportRow(emp *model.Empleado) []any {
	valores := make([]any, len(exportHeaders))
	valores[0] = emp.ID
	valores[1] = emp.NumEmpleado
	valores[2] = emp.Nombres
	valores[3] = emp.ApellidoPaterno
	valores[4] = textoONada(emp.ApellidoMaterno)
	if emp.Departamento != nil {
		valores[5] = emp.Departamento.Nombre
	} else {
		valores[5] = ""
	}
	if emp.Puesto != nil {
		valores[6] = emp.Puesto.Nombre
	} else {
		valores[6] = ""
	}
	if emp.FechaIngreso != nil {
		valores[7] = emp.FechaIngreso.Format("2006-01-02")
	} else {
		valores[7] = ""
	}
	valores[8] = textoONada(emp.Email)
	valores[9] = textoONada(emp.Telefono)
	if emp.Activo {
		valores[10] = "Sí"
	} else {
		valores[10] = "No"
	}
	return valores
}

func textoONada(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
