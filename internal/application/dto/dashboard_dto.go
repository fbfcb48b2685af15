package dto

// AccountingDashboard vista del rol accounting: todos los asientos.
type AccountingDashboard struct {
	View    string          `json:"view"`
	Entries []EntryResponse `json:"entries"`
}

// CommercialDashboard vista comercial. Para el agente: solo sus ventas.
// Para el jefe: todas las ventas más el resumen de cantidades del día por producto.
type CommercialDashboard struct {
	View           string           `json:"view"`
	CanCreate      bool             `json:"can_create"`
	Sales          []SaleResponse   `json:"sales"`
	TodayByProduct map[string]int64 `json:"today_by_product,omitempty"`
}

// StockDashboard vista del rol stock: movimientos más disponibilidad por producto.
type StockDashboard struct {
	View         string                  `json:"view"`
	Movements    []StockMovementResponse `json:"movements"`
	Availability map[string]int64        `json:"availability"`
}

// FinanceDashboard vista del rol finance: totales del libro mayor.
type FinanceDashboard struct {
	View         string          `json:"view"`
	TotalIncome  string          `json:"total_income"`
	TotalExpense string          `json:"total_expense"`
	Balance      string          `json:"balance"`
	Entries      []EntryResponse `json:"entries"`
}

// ManagementDashboard vista consolidada de dirección.
type ManagementDashboard struct {
	View            string                  `json:"view"`
	TotalIncome     string                  `json:"total_income"`
	TotalExpense    string                  `json:"total_expense"`
	Balance         string                  `json:"balance"`
	TotalSales      string                  `json:"total_sales"`
	TotalQuantity   int64                   `json:"total_quantity"`
	Availability    map[string]int64        `json:"availability"`
	Entries         []EntryResponse         `json:"entries"`
	Sales           []SaleResponse          `json:"sales"`
	RecentMovements []StockMovementResponse `json:"recent_movements"` // últimos 20
	Users           []UserResponse          `json:"users"`
}
