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

func TestSaleCreate_TotalEsCantidadPorPrecio(t *testing.T) {
	_, _, sales, _, tx := newFixture()
	uc := usecase.NewSaleUseCase(sales, tx)

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		Date:      "2025-03-10",
		Product:   "Cemento 50kg",
		Quantity:  7,
		UnitPrice: "12.50",
	}, "agente-1")
	require.NoError(t, err)

	assert.Equal(t, "87.50", out.Total, "total = 7 × 12.50")
	assert.Equal(t, "12.50", out.UnitPrice)
	assert.Equal(t, "agente-1", out.UserID)
	assert.Equal(t, "2025-03-10", out.Date)
}

func TestSaleCreate_Validaciones(t *testing.T) {
	_, _, sales, _, tx := newFixture()
	uc := usecase.NewSaleUseCase(sales, tx)
	ctx := context.Background()

	base := dto.CreateSaleRequest{
		Date:      "2025-03-10",
		Product:   "Cemento 50kg",
		Quantity:  1,
		UnitPrice: "10.00",
	}

	in := base
	in.Quantity = 0
	_, err := uc.Create(ctx, in, "agente-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	in = base
	in.UnitPrice = "-5"
	_, err = uc.Create(ctx, in, "agente-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	in = base
	in.UnitPrice = "abc"
	_, err = uc.Create(ctx, in, "agente-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio no numérico")

	in = base
	in.Product = "   "
	_, err = uc.Create(ctx, in, "agente-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto vacío")

	in = base
	in.Date = "10/03/2025"
	_, err = uc.Create(ctx, in, "agente-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha distinto de YYYY-MM-DD")
}

func TestSaleListByOwner_SoloDelAgente(t *testing.T) {
	_, _, sales, _, tx := newFixture()
	uc := usecase.NewSaleUseCase(sales, tx)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateSaleRequest{Date: "2025-03-10", Product: "A", Quantity: 1, UnitPrice: "1"}, "agente-1")
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateSaleRequest{Date: "2025-03-10", Product: "B", Quantity: 1, UnitPrice: "1"}, "agente-2")
	require.NoError(t, err)

	mine, err := uc.ListByOwner(ctx, "agente-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Product)
}

func TestSaleDelete_NoExiste(t *testing.T) {
	_, _, sales, _, tx := newFixture()
	uc := usecase.NewSaleUseCase(sales, tx)

	err := uc.Delete(context.Background(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
