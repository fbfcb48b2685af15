package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta registrada por un agente comercial.
// Total se fija en la creación como Quantity × UnitPrice y no se recalcula.
type Sale struct {
	ID        string
	Date      time.Time
	Product   string
	Quantity  int64 // >= 1
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	UserID    string
	CreatedAt time.Time
}
