package usecase

import (
	"context"
	"time"

	appauth "github.com/savane-sarl/gestion-api/internal/application/auth"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/report"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
)

// recentMovementsLimit movimientos mostrados en el panel de dirección.
const recentMovementsLimit = 20

// DashboardUseCase arma los datos de la vista de aterrizaje de cada rol.
type DashboardUseCase struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	saleRepo   repository.SaleRepository
	stockRepo  repository.StockRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		saleRepo:   saleRepo,
		stockRepo:  stockRepo,
	}
}

// LandingView mapea rol → vista de aterrizaje; "" para roles desconocidos.
func LandingView(role entity.Role) string {
	switch role {
	case entity.RoleAccounting:
		return "accounting"
	case entity.RoleCommercialAgent, entity.RoleCommercialChief:
		return "commercial"
	case entity.RoleStock:
		return "stock"
	case entity.RoleFinance:
		return "finance"
	case entity.RoleManagement:
		return "management"
	}
	return ""
}

// Accounting lista todos los asientos para la vista de contabilidad.
func (uc *DashboardUseCase) Accounting(ctx context.Context) (*dto.AccountingDashboard, error) {
	entries, err := uc.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AccountingDashboard{
		View:    "accounting",
		Entries: toEntryResponses(entries),
	}, nil
}

// Commercial arma la vista comercial según el sub-rol: el agente ve y crea
// solo sus ventas; el jefe ve todas, sin crear, con el resumen del día por
// producto.
func (uc *DashboardUseCase) Commercial(ctx context.Context, userID string, role entity.Role) (*dto.CommercialDashboard, error) {
	if role == entity.RoleCommercialChief {
		sales, err := uc.saleRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.CommercialDashboard{
			View:           "commercial",
			CanCreate:      false,
			Sales:          toSaleResponses(sales),
			TodayByProduct: report.QuantityByProductOn(time.Now(), sales),
		}, nil
	}
	sales, err := uc.saleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CommercialDashboard{
		View:      "commercial",
		CanCreate: true,
		Sales:     toSaleResponses(sales),
	}, nil
}

// Stock arma la vista de inventario: movimientos y disponibilidad derivada.
func (uc *DashboardUseCase) Stock(ctx context.Context) (*dto.StockDashboard, error) {
	movements, err := uc.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockDashboard{
		View:         "stock",
		Movements:    toStockResponses(movements),
		Availability: report.StockAvailability(movements),
	}, nil
}

// Finance arma la vista financiera: totales del libro mayor.
func (uc *DashboardUseCase) Finance(ctx context.Context) (*dto.FinanceDashboard, error) {
	entries, err := uc.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	totals := report.SumLedger(entries)
	return &dto.FinanceDashboard{
		View:         "finance",
		TotalIncome:  totals.TotalIncome.StringFixed(2),
		TotalExpense: totals.TotalExpense.StringFixed(2),
		Balance:      totals.Balance.StringFixed(2),
		Entries:      toEntryResponses(entries),
	}, nil
}

// Management arma el resumen consolidado de dirección: los cuatro agregados,
// la disponibilidad por producto, la lista de usuarios y los últimos 20
// movimientos de stock.
func (uc *DashboardUseCase) Management(ctx context.Context) (*dto.ManagementDashboard, error) {
	entries, err := uc.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.stockRepo.ListRecent(ctx, recentMovementsLimit)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ledgerTotals := report.SumLedger(entries)
	saleTotals := report.SumSales(sales)

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		userResponses = append(userResponses, *appauth.ToUserResponse(u))
	}

	return &dto.ManagementDashboard{
		View:            "management",
		TotalIncome:     ledgerTotals.TotalIncome.StringFixed(2),
		TotalExpense:    ledgerTotals.TotalExpense.StringFixed(2),
		Balance:         ledgerTotals.Balance.StringFixed(2),
		TotalSales:      saleTotals.TotalSales.StringFixed(2),
		TotalQuantity:   saleTotals.TotalQuantity,
		Availability:    report.StockAvailability(movements),
		Entries:         toEntryResponses(entries),
		Sales:           toSaleResponses(sales),
		RecentMovements: toStockResponses(recent),
		Users:           userResponses,
	}, nil
}
