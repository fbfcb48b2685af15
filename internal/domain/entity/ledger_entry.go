package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento contable.
const (
	EntryIncome  = "income"
	EntryExpense = "expense"
)

// LedgerEntry es un asiento de ingreso o gasto. Es el registro inmutable de
// un hecho financiero: nunca se actualiza, solo dirección lo elimina.
type LedgerEntry struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // siempre > 0; el signo lo da Type
	Type        string          // income | expense
	UserID      string          // usuario que registró el asiento
	CreatedAt   time.Time
}
