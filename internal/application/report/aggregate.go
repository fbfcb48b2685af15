// Package report contiene el motor de agregación y la generación de informes
// descargables. Las funciones de agregación son puras: operan sobre conjuntos
// de registros ya cargados, con aritmética decimal exacta.
package report

import (
	"time"

	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LedgerTotals son los agregados del libro mayor.
type LedgerTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// SumLedger calcula ingresos, gastos y balance. Conjunto vacío → ceros.
func SumLedger(entries []*entity.LedgerEntry) LedgerTotals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case entity.EntryIncome:
			income = income.Add(e.Amount)
		case entity.EntryExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return LedgerTotals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// SaleTotals son los agregados de ventas.
type SaleTotals struct {
	TotalSales    decimal.Decimal
	TotalQuantity int64
}

// SumSales calcula el total facturado y las unidades vendidas.
func SumSales(sales []*entity.Sale) SaleTotals {
	total := decimal.Zero
	var qty int64
	for _, s := range sales {
		total = total.Add(s.Total)
		qty += s.Quantity
	}
	return SaleTotals{TotalSales: total, TotalQuantity: qty}
}

// QuantityByProductOn agrupa por producto las cantidades de las ventas cuya
// fecha cae en el mismo día calendario que `day` (zona horaria de `day`).
func QuantityByProductOn(day time.Time, sales []*entity.Sale) map[string]int64 {
	y, m, d := day.Date()
	out := make(map[string]int64)
	for _, s := range sales {
		sy, sm, sd := s.Date.In(day.Location()).Date()
		if sy == y && sm == m && sd == d {
			out[s.Product] += s.Quantity
		}
	}
	return out
}

// StockAvailability deriva la cantidad disponible por producto:
// Σ entradas − Σ salidas, agrupado por nombre exacto (sensible a mayúsculas).
// Debe recibir el historial completo, sin filtro de fechas, y el resultado no
// depende del orden de inserción.
func StockAvailability(movements []*entity.StockMovement) map[string]int64 {
	out := make(map[string]int64)
	for _, m := range movements {
		out[m.Product] += m.QuantityIn - m.QuantityOut
	}
	return out
}

// EndOfDay ensancha una fecha sin hora al último instante de su día, para que
// los filtros de rango incluyan los registros del propio día final.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
