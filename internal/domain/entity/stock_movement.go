package entity

import "time"

// StockMovement es un movimiento de inventario (entrada y/o salida) de un
// producto identificado por nombre exacto. La cantidad disponible por
// producto es derivada: Σ QuantityIn − Σ QuantityOut sobre todo el historial.
type StockMovement struct {
	ID          string
	Date        time.Time
	Product     string
	QuantityIn  int64 // >= 0
	QuantityOut int64 // >= 0
	UserID      string
	CreatedAt   time.Time
}
