package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, date, product, quantity_in, quantity_out, user_id, created_at`

// Create persiste un movimiento de inventario.
func (r *StockRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stocks (id, date, product, quantity_in, quantity_out, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Date, m.Product, m.QuantityIn, m.QuantityOut, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListAll devuelve todos los movimientos por fecha descendente.
// La disponibilidad por producto se deriva siempre del historial completo.
func (r *StockRepo) ListAll(ctx context.Context) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY date DESC`
	return r.list(ctx, query)
}

// ListByUser devuelve los movimientos registrados por un usuario.
func (r *StockRepo) ListByUser(ctx context.Context, userID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE user_id = $1 ORDER BY date DESC`
	return r.list(ctx, query, userID)
}

// ListRecent devuelve los últimos `limit` movimientos.
func (r *StockRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY date DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

// ListInRange devuelve los movimientos con date en [start, end], ambos inclusive.
func (r *StockRepo) ListInRange(ctx context.Context, start, end time.Time) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	return r.list(ctx, query, start, end)
}

// DeleteByID elimina un movimiento; domain.ErrNotFound si el id no existe.
func (r *StockRepo) DeleteByID(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUser elimina todos los movimientos registrados por un usuario.
func (r *StockRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stocks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete stock movements by user: %w", err)
	}
	return nil
}

func (r *StockRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.Date, &m.Product, &m.QuantityIn, &m.QuantityOut, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
