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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, date, product, quantity, unit_price, total, user_id, created_at`

// Create persiste una venta. Total ya viene calculado en el caso de uso.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, date, product, quantity, unit_price, total, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Date, s.Product, s.Quantity, s.UnitPrice, s.Total, s.UserID, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// ListAll devuelve todas las ventas por fecha descendente.
func (r *SaleRepo) ListAll(ctx context.Context) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC`
	return r.list(ctx, query)
}

// ListByUser devuelve las ventas de un agente.
func (r *SaleRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 ORDER BY date DESC`
	return r.list(ctx, query, userID)
}

// ListInRange devuelve las ventas con date en [start, end], ambos inclusive.
func (r *SaleRepo) ListInRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	return r.list(ctx, query, start, end)
}

// DeleteByID elimina una venta; domain.ErrNotFound si el id no existe.
func (r *SaleRepo) DeleteByID(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUser elimina todas las ventas registradas por un usuario.
func (r *SaleRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete sales by user: %w", err)
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.Product, &s.Quantity, &s.UnitPrice, &s.Total, &s.UserID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
