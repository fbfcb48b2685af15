package repository

import (
	"context"
	"time"

	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para los asientos de
// ingresos y gastos. Los listados vienen ordenados por fecha descendente.
type LedgerRepository interface {
	Create(ctx context.Context, e *entity.LedgerEntry) error
	ListAll(ctx context.Context) ([]*entity.LedgerEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.LedgerEntry, error)
	// ListInRange incluye ambos extremos del intervalo.
	ListInRange(ctx context.Context, start, end time.Time) ([]*entity.LedgerEntry, error)
	// DeleteByID retorna domain.ErrNotFound si el id no existe.
	DeleteByID(ctx context.Context, id string) error
	// DeleteByUser elimina todos los asientos registrados por un usuario.
	DeleteByUser(ctx context.Context, userID string) error
}
