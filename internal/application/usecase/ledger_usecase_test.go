package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
	"github.com/savane-sarl/gestion-api/internal/domain"
)

func TestLedgerCreate_AsientoValido(t *testing.T) {
	_, ledger, _, _, tx := newFixture()
	uc := usecase.NewLedgerUseCase(ledger, tx)

	out, err := uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:        "2025-03-10",
		Description: "Venta de mostrador",
		Amount:      "150.00",
		Type:        "income",
	}, "contable-1")
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "150.00", out.Amount)
	assert.Equal(t, "income", out.Type)
	assert.Equal(t, "contable-1", out.UserID)
}

func TestLedgerCreate_Validaciones(t *testing.T) {
	_, ledger, _, _, tx := newFixture()
	uc := usecase.NewLedgerUseCase(ledger, tx)
	ctx := context.Background()

	base := dto.CreateEntryRequest{
		Date:        "2025-03-10",
		Description: "Compra de insumos",
		Amount:      "80.00",
		Type:        "expense",
	}

	in := base
	in.Amount = "0"
	_, err := uc.Create(ctx, in, "contable-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	in = base
	in.Amount = "-10"
	_, err = uc.Create(ctx, in, "contable-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo")

	in = base
	in.Type = "transfer"
	_, err = uc.Create(ctx, in, "contable-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera de income|expense")

	in = base
	in.Description = ""
	_, err = uc.Create(ctx, in, "contable-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción vacía")
}

func TestLedgerDelete_EliminaYReportaInexistente(t *testing.T) {
	_, ledger, _, _, tx := newFixture()
	uc := usecase.NewLedgerUseCase(ledger, tx)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateEntryRequest{
		Date:        "2025-03-10",
		Description: "Alquiler",
		Amount:      "500",
		Type:        "expense",
	}, "contable-1")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.ID))

	err = uc.Delete(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el segundo borrado debe fallar")
}
