package dto

// CreateStockRequest entrada para registrar un movimiento de inventario.
type CreateStockRequest struct {
	Date        string `json:"date" form:"date"`
	Product     string `json:"product" form:"product"`
	QuantityIn  int64  `json:"quantity_in" form:"quantity_in"`
	QuantityOut int64  `json:"quantity_out" form:"quantity_out"`
}

// StockMovementResponse salida de un movimiento.
type StockMovementResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Product     string `json:"product"`
	QuantityIn  int64  `json:"quantity_in"`
	QuantityOut int64  `json:"quantity_out"`
	UserID      string `json:"user_id"`
}
