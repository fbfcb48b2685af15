package dto

// CreateSaleRequest entrada para registrar una venta (solo agentes comerciales).
type CreateSaleRequest struct {
	Date      string `json:"date" form:"date"`
	Product   string `json:"product" form:"product"`
	Quantity  int64  `json:"quantity" form:"quantity"`
	UnitPrice string `json:"unit_price" form:"unit_price"`
}

// SaleResponse salida de una venta; Total = Quantity × UnitPrice al momento de crearla.
type SaleResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
	UserID    string `json:"user_id"`
}
