package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/report"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
)

// StockUseCase registro y consulta de movimientos de inventario.
type StockUseCase struct {
	repo repository.StockRepository
	tx   TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, tx TxRunner) *StockUseCase {
	return &StockUseCase{repo: repo, tx: tx}
}

// Create registra un movimiento. Las cantidades no pueden ser negativas.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest, ownerID string) (*dto.StockMovementResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Product) == "" {
		return nil, fmt.Errorf("%w: el producto es obligatorio", domain.ErrInvalidInput)
	}
	if in.QuantityIn < 0 || in.QuantityOut < 0 {
		return nil, fmt.Errorf("%w: las cantidades no pueden ser negativas", domain.ErrInvalidInput)
	}

	movement := &entity.StockMovement{
		ID:          uuid.New().String(),
		Date:        date,
		Product:     in.Product,
		QuantityIn:  in.QuantityIn,
		QuantityOut: in.QuantityOut,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
	}
	err = uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LedgerRepository,
		_ repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		return stockRepo.Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	resp := toStockResponse(movement)
	return &resp, nil
}

// ListAll devuelve todos los movimientos por fecha descendente.
func (uc *StockUseCase) ListAll(ctx context.Context) ([]dto.StockMovementResponse, error) {
	movements, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toStockResponses(movements), nil
}

// ListByOwner devuelve los movimientos registrados por un usuario.
func (uc *StockUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.StockMovementResponse, error) {
	movements, err := uc.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toStockResponses(movements), nil
}

// Availability deriva la cantidad disponible por producto sobre el historial completo.
func (uc *StockUseCase) Availability(ctx context.Context) (map[string]int64, error) {
	movements, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.StockAvailability(movements), nil
}

// Delete elimina un movimiento por id (solo dirección).
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LedgerRepository,
		_ repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		return stockRepo.DeleteByID(ctx, id)
	})
}
