package dto

// CreateEntryRequest entrada para registrar un ingreso o gasto.
// Date en formato 2006-01-02.
type CreateEntryRequest struct {
	Date        string `json:"date" form:"date"`
	Description string `json:"description" form:"description"`
	Amount      string `json:"amount" form:"amount"`
	Type        string `json:"type" form:"type"` // income | expense
}

// EntryResponse salida de un asiento.
type EntryResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	UserID      string `json:"user_id"`
}
