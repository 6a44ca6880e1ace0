// Package pdf implementa la exportación del reporte de saldos a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                    │
//	│  ───────────────────────────────────────────────────── │
//	│  TABLA: Producto | Ubicación | Cantidad                  │
//	│  ───────────────────────────────────────────────────── │
//	│  PIE: total de filas                                     │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.PDFGenerator = (*BalanceReportGenerator)(nil)

// BalanceReportGenerator implementa report.PDFGenerator usando Maroto v2.
type BalanceReportGenerator struct{}

// NewBalanceReportGenerator construye el generador.
func NewBalanceReportGenerator() *BalanceReportGenerator { return &BalanceReportGenerator{} }

// GenerateBalanceReport genera el PDF del reporte de saldos y devuelve sus bytes.
func (g *BalanceReportGenerator) GenerateBalanceReport(rows []dto.BalanceRowDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de saldos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(balanceRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte y fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE SALDOS POR UBICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de saldos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Ubicación", 5, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// balanceRow: una fila por saldo distinto de cero.
func balanceRow(r dto.BalanceRowDTO) core.Row {
	return row.New(6).Add(
		col.New(5).Add(text.New(
			fmt.Sprintf("%s — %s", r.ProductID, r.ProductName),
			props.Text{Size: 8, Top: 1},
		)),
		col.New(5).Add(text.New(
			fmt.Sprintf("%s — %s", r.LocationID, r.LocationName),
			props.Text{Size: 8, Top: 1},
		)),
		col.New(2).Add(text.New(
			strconv.Itoa(r.Qty),
			props.Text{Size: 8, Align: align.Right, Top: 1},
		)),
	)
}

// footerRow: total de filas del reporte.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d saldos distintos de cero", total),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)),
	)
}
