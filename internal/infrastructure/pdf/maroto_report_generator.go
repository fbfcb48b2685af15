// Package pdf implementa la generación del informe gerencial en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + intervalo del informe                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingresos y gastos (fecha, descripción, tipo, monto)  │
//	│  TABLA: Ventas (fecha, producto, cant, p.unit, total)        │
//	│  TABLA: Movimientos de stock (fecha, producto, in, out)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ingresos / gastos / balance / ventas               │
//	│  DISPONIBILIDAD: stock por producto (historial completo)     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

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

	"github.com/savane-sarl/gestion-api/internal/application/report"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ report.Generator = (*MarotoReportGenerator)(nil)

// Generate genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, data *report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de gestión", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("INGRESOS Y GASTOS"))
	m.AddRows(ledgerHeaderRow())
	for _, e := range data.Entries {
		m.AddRows(ledgerDetailRow(e))
	}

	m.AddRows(sectionTitleRow("VENTAS"))
	m.AddRows(saleHeaderRow())
	for _, s := range data.Sales {
		m.AddRows(saleDetailRow(s))
	}

	m.AddRows(sectionTitleRow("MOVIMIENTOS DE STOCK"))
	m.AddRows(stockHeaderRow())
	for _, mv := range data.Movements {
		m.AddRows(stockDetailRow(mv))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(data)...)

	m.AddRows(sectionTitleRow("STOCK DISPONIBLE POR PRODUCTO"))
	for _, r := range availabilityRows(data.Availability) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) e intervalo + fecha de generación (der).
func headerRow(data *report.Data) core.Row {
	interval := fmt.Sprintf("Del %s al %s",
		data.Start.Format(dateLayout), data.End.Format(dateLayout))

	return row.New(16).Add(
		col.New(7).Add(
			text.New("INFORME DE GESTIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(interval, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func ledgerHeaderRow() core.Row {
	return row.New(5).Add(
		headerCell(2, "Fecha"),
		headerCell(5, "Descripción"),
		headerCell(2, "Tipo"),
		headerCellRight(3, "Monto"),
	)
}

func ledgerDetailRow(e *entity.LedgerEntry) core.Row {
	tipo := "Ingreso"
	if e.Type == entity.EntryExpense {
		tipo = "Gasto"
	}
	return row.New(4).Add(
		bodyCell(2, e.Date.Format(dateLayout)),
		bodyCell(5, e.Description),
		bodyCell(2, tipo),
		bodyCellRight(3, e.Amount.StringFixed(2)),
	)
}

func saleHeaderRow() core.Row {
	return row.New(5).Add(
		headerCell(2, "Fecha"),
		headerCell(4, "Producto"),
		headerCellRight(2, "Cantidad"),
		headerCellRight(2, "P. Unit"),
		headerCellRight(2, "Total"),
	)
}

func saleDetailRow(s *entity.Sale) core.Row {
	return row.New(4).Add(
		bodyCell(2, s.Date.Format(dateLayout)),
		bodyCell(4, s.Product),
		bodyCellRight(2, fmt.Sprintf("%d", s.Quantity)),
		bodyCellRight(2, s.UnitPrice.StringFixed(2)),
		bodyCellRight(2, s.Total.StringFixed(2)),
	)
}

func stockHeaderRow() core.Row {
	return row.New(5).Add(
		headerCell(2, "Fecha"),
		headerCell(6, "Producto"),
		headerCellRight(2, "Entrada"),
		headerCellRight(2, "Salida"),
	)
}

func stockDetailRow(m *entity.StockMovement) core.Row {
	return row.New(4).Add(
		bodyCell(2, m.Date.Format(dateLayout)),
		bodyCell(6, m.Product),
		bodyCellRight(2, fmt.Sprintf("%d", m.QuantityIn)),
		bodyCellRight(2, fmt.Sprintf("%d", m.QuantityOut)),
	)
}

func totalsRows(data *report.Data) []core.Row {
	lines := []struct {
		label string
		value string
	}{
		{"Total ingresos", data.Ledger.TotalIncome.StringFixed(2)},
		{"Total gastos", data.Ledger.TotalExpense.StringFixed(2)},
		{"Balance", data.Ledger.Balance.StringFixed(2)},
		{"Total ventas", data.SaleTotals.TotalSales.StringFixed(2)},
	}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(l.label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			})),
			col.New(4).Add(text.New(l.value, props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}

// availabilityRows ordena los productos por nombre para un render estable.
func availabilityRows(availability map[string]int64) []core.Row {
	products := make([]string, 0, len(availability))
	for p := range availability {
		products = append(products, p)
	}
	sort.Strings(products)

	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(4).Add(
			bodyCell(8, p),
			bodyCellRight(4, fmt.Sprintf("%d", availability[p])),
		))
	}
	return rows
}

// ── Celdas ────────────────────────────────────────────────────────────────────

func headerCell(size int, s string) core.Col {
	return col.New(size).Add(text.New(s, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
	}))
}

func headerCellRight(size int, s string) core.Col {
	return col.New(size).Add(text.New(s, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right, Top: 1,
	}))
}

func bodyCell(size int, s string) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1}))
}

func bodyCellRight(size int, s string) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: align.Right, Top: 1}))
}
