package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SaleUseCase registro y consulta de ventas. Solo el agente comercial crea;
// el jefe comercial consulta todas las ventas en lectura.
type SaleUseCase struct {
	repo repository.SaleRepository
	tx   TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx TxRunner) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx}
}

// Create registra una venta del agente. El total se fija aquí como
// cantidad × precio unitario y nunca se recalcula después.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest, ownerID string) (*dto.SaleResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Product) == "" {
		return nil, fmt.Errorf("%w: el producto es obligatorio", domain.ErrInvalidInput)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	}
	unitPrice, err := decimal.NewFromString(in.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: precio unitario inválido", domain.ErrInvalidInput)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor que cero", domain.ErrInvalidInput)
	}

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Date:      date,
		Product:   in.Product,
		Quantity:  in.Quantity,
		UnitPrice: unitPrice,
		Total:     unitPrice.Mul(decimal.NewFromInt(in.Quantity)),
		UserID:    ownerID,
		CreatedAt: time.Now(),
	}
	err = uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LedgerRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// ListAll devuelve todas las ventas (vista del jefe comercial y de dirección).
func (uc *SaleUseCase) ListAll(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListByOwner devuelve las ventas de un agente (su propia vista).
func (uc *SaleUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// Delete elimina una venta por id (solo dirección).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LedgerRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		return saleRepo.DeleteByID(ctx, id)
	})
}
