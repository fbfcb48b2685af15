package repository

import (
	"context"
	"time"

	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para movimientos de inventario.
type StockRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListAll(ctx context.Context) ([]*entity.StockMovement, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.StockMovement, error)
	// ListRecent devuelve los últimos `limit` movimientos por fecha descendente.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*entity.StockMovement, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
