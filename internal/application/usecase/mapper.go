package usecase

import (
	"fmt"
	"time"

	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// parseDate convierte una fecha de formulario (AAAA-MM-DD) al inicio de ese día.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: la fecha es obligatoria", domain.ErrInvalidInput)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida (formato AAAA-MM-DD)", domain.ErrInvalidInput)
	}
	return t, nil
}

func toEntryResponse(e *entity.LedgerEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:          e.ID,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Type:        e.Type,
		UserID:      e.UserID,
	}
}

func toEntryResponses(entries []*entity.LedgerEntry) []dto.EntryResponse {
	out := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		Date:      s.Date.Format(dateLayout),
		Product:   s.Product,
		Quantity:  s.Quantity,
		UnitPrice: s.UnitPrice.StringFixed(2),
		Total:     s.Total.StringFixed(2),
		UserID:    s.UserID,
	}
}

func toSaleResponses(sales []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out
}

func toStockResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:          m.ID,
		Date:        m.Date.Format(dateLayout),
		Product:     m.Product,
		QuantityIn:  m.QuantityIn,
		QuantityOut: m.QuantityOut,
		UserID:      m.UserID,
	}
}

func toStockResponses(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toStockResponse(m))
	}
	return out
}
