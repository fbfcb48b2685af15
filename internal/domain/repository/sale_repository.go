package repository

import (
	"context"
	"time"

	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	ListAll(ctx context.Context) ([]*entity.Sale, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Sale, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
