// Package excel implementa la variante XLSX del informe gerencial con una
// hoja por sección: ingresos/gastos, ventas, stock y resumen.
package excel

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/savane-sarl/gestion-api/internal/application/report"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// ExcelizeReportGenerator implementa report.Generator usando Excelize.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

var _ report.Generator = (*ExcelizeReportGenerator)(nil)

// Generate genera el libro XLSX del informe y devuelve sus bytes.
func (g *ExcelizeReportGenerator) Generate(_ context.Context, data *report.Data) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeLedgerSheet(f, data.Entries); err != nil {
		return nil, err
	}
	if err := writeSalesSheet(f, data.Sales); err != nil {
		return nil, err
	}
	if err := writeStockSheet(f, data.Movements); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, data); err != nil {
		return nil, err
	}

	// La hoja por defecto queda vacía; se elimina tras crear las nuestras.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: eliminar hoja por defecto: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLedgerSheet(f *excelize.File, entries []*entity.LedgerEntry) error {
	const sheet = "Ingresos y gastos"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: crear hoja %q: %w", sheet, err)
	}
	header := []interface{}{"fecha", "descripcion", "tipo", "monto"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado %q: %w", sheet, err)
	}
	rowNum := 2
	for _, e := range entries {
		rowData := []interface{}{
			e.Date.Format(dateLayout), e.Description, e.Type, e.Amount.StringFixed(2),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, cell, &rowData); err != nil {
			return fmt.Errorf("xlsx: fila %d de %q: %w", rowNum, sheet, err)
		}
		rowNum++
	}
	return nil
}

func writeSalesSheet(f *excelize.File, sales []*entity.Sale) error {
	const sheet = "Ventas"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: crear hoja %q: %w", sheet, err)
	}
	header := []interface{}{"fecha", "producto", "cantidad", "precio_unitario", "total"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado %q: %w", sheet, err)
	}
	rowNum := 2
	for _, s := range sales {
		rowData := []interface{}{
			s.Date.Format(dateLayout), s.Product, s.Quantity,
			s.UnitPrice.StringFixed(2), s.Total.StringFixed(2),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, cell, &rowData); err != nil {
			return fmt.Errorf("xlsx: fila %d de %q: %w", rowNum, sheet, err)
		}
		rowNum++
	}
	return nil
}

func writeStockSheet(f *excelize.File, movements []*entity.StockMovement) error {
	const sheet = "Stock"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: crear hoja %q: %w", sheet, err)
	}
	header := []interface{}{"fecha", "producto", "entrada", "salida"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado %q: %w", sheet, err)
	}
	rowNum := 2
	for _, m := range movements {
		rowData := []interface{}{
			m.Date.Format(dateLayout), m.Product, m.QuantityIn, m.QuantityOut,
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, cell, &rowData); err != nil {
			return fmt.Errorf("xlsx: fila %d de %q: %w", rowNum, sheet, err)
		}
		rowNum++
	}
	return nil
}

func writeSummarySheet(f *excelize.File, data *report.Data) error {
	const sheet = "Resumen"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: crear hoja %q: %w", sheet, err)
	}
	rows := [][]interface{}{
		{"intervalo", fmt.Sprintf("%s a %s", data.Start.Format(dateLayout), data.End.Format(dateLayout))},
		{"total_ingresos", data.Ledger.TotalIncome.StringFixed(2)},
		{"total_gastos", data.Ledger.TotalExpense.StringFixed(2)},
		{"balance", data.Ledger.Balance.StringFixed(2)},
		{"total_ventas", data.SaleTotals.TotalSales.StringFixed(2)},
		{"unidades_vendidas", data.SaleTotals.TotalQuantity},
		{},
		{"producto", "stock_disponible"},
	}

	products := make([]string, 0, len(data.Availability))
	for p := range data.Availability {
		products = append(products, p)
	}
	sort.Strings(products)
	for _, p := range products {
		rows = append(rows, []interface{}{p, data.Availability[p]})
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("xlsx: fila %d de %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
