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

func TestStockCreate_MovimientoValido(t *testing.T) {
	_, _, _, stock, tx := newFixture()
	uc := usecase.NewStockUseCase(stock, tx)

	out, err := uc.Create(context.Background(), dto.CreateStockRequest{
		Date:        "2025-03-10",
		Product:     "Varilla 12mm",
		QuantityIn:  100,
		QuantityOut: 0,
	}, "almacen-1")
	require.NoError(t, err)

	assert.Equal(t, int64(100), out.QuantityIn)
	assert.Equal(t, int64(0), out.QuantityOut)
	assert.Equal(t, "almacen-1", out.UserID)
}

func TestStockCreate_RechazaCantidadesNegativas(t *testing.T) {
	_, _, _, stock, tx := newFixture()
	uc := usecase.NewStockUseCase(stock, tx)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateStockRequest{
		Date: "2025-03-10", Product: "Varilla 12mm", QuantityIn: -1,
	}, "almacen-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateStockRequest{
		Date: "2025-03-10", Product: "Varilla 12mm", QuantityOut: -5,
	}, "almacen-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockListByOwner_SoloDelUsuario(t *testing.T) {
	_, _, _, stock, tx := newFixture()
	uc := usecase.NewStockUseCase(stock, tx)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateStockRequest{Date: "2025-03-10", Product: "Varilla 12mm", QuantityIn: 10}, "almacen-1")
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateStockRequest{Date: "2025-03-10", Product: "Cemento 50kg", QuantityIn: 5}, "almacen-2")
	require.NoError(t, err)

	mine, err := uc.ListByOwner(ctx, "almacen-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Varilla 12mm", mine[0].Product)
}

func TestStockAvailability_NetoPorProducto(t *testing.T) {
	_, _, _, stock, tx := newFixture()
	uc := usecase.NewStockUseCase(stock, tx)
	ctx := context.Background()

	seed := []dto.CreateStockRequest{
		{Date: "2025-03-01", Product: "Cemento", QuantityIn: 50},
		{Date: "2025-03-02", Product: "Cemento", QuantityOut: 20},
		{Date: "2025-03-03", Product: "Varilla", QuantityIn: 10, QuantityOut: 3},
	}
	for _, in := range seed {
		_, err := uc.Create(ctx, in, "almacen-1")
		require.NoError(t, err)
	}

	avail, err := uc.Availability(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(30), avail["Cemento"])
	assert.Equal(t, int64(7), avail["Varilla"])
}

func TestStockDelete_NoExiste(t *testing.T) {
	_, _, _, stock, tx := newFixture()
	uc := usecase.NewStockUseCase(stock, tx)

	err := uc.Delete(context.Background(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
