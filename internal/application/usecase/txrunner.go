package usecase

import (
	"context"

	"github.com/savane-sarl/gestion-api/internal/domain/repository"
)

// TxRunner es el puerto hacia la ejecución transaccional: fn corre con los
// cuatro repositorios atados a una misma transacción; si fn falla no queda
// ninguna escritura parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		ledgerRepo repository.LedgerRepository,
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error) error
}
