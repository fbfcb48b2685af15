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

// LedgerUseCase registro y consulta de ingresos/gastos.
type LedgerUseCase struct {
	repo repository.LedgerRepository
	tx   TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.LedgerRepository, tx TxRunner) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, tx: tx}
}

// Create registra un asiento a nombre del usuario autenticado.
// El monto debe ser estrictamente positivo y el tipo income o expense.
func (uc *LedgerUseCase) Create(ctx context.Context, in dto.CreateEntryRequest, ownerID string) (*dto.EntryResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: la descripción es obligatoria", domain.ErrInvalidInput)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: monto inválido", domain.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.Type != entity.EntryIncome && in.Type != entity.EntryExpense {
		return nil, fmt.Errorf("%w: el tipo debe ser income o expense", domain.ErrInvalidInput)
	}

	entry := &entity.LedgerEntry{
		ID:          uuid.New().String(),
		Date:        date,
		Description: in.Description,
		Amount:      amount,
		Type:        in.Type,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
	}
	err = uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		return ledgerRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// ListAll devuelve todos los asientos por fecha descendente.
func (uc *LedgerUseCase) ListAll(ctx context.Context) ([]dto.EntryResponse, error) {
	entries, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

// Delete elimina un asiento por id (solo dirección).
func (uc *LedgerUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		return ledgerRepo.DeleteByID(ctx, id)
	})
}
