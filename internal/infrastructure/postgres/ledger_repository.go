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

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, date, description, amount, type, user_id, created_at`

// Create persiste un asiento de ingreso o gasto.
func (r *LedgerRepo) Create(ctx context.Context, e *entity.LedgerEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO income_expenses (id, date, description, amount, type, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Description, e.Amount, e.Type, e.UserID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// ListAll devuelve todos los asientos por fecha descendente.
func (r *LedgerRepo) ListAll(ctx context.Context) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM income_expenses ORDER BY date DESC`
	return r.list(ctx, query)
}

// ListByUser devuelve los asientos registrados por un usuario.
func (r *LedgerRepo) ListByUser(ctx context.Context, userID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM income_expenses WHERE user_id = $1 ORDER BY date DESC`
	return r.list(ctx, query, userID)
}

// ListInRange devuelve los asientos con date en [start, end], ambos inclusive.
func (r *LedgerRepo) ListInRange(ctx context.Context, start, end time.Time) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM income_expenses WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	return r.list(ctx, query, start, end)
}

// DeleteByID elimina un asiento; domain.ErrNotFound si el id no existe.
func (r *LedgerRepo) DeleteByID(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM income_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUser elimina todos los asientos registrados por un usuario.
func (r *LedgerRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM income_expenses WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete ledger entries by user: %w", err)
	}
	return nil
}

func (r *LedgerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Amount, &e.Type, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
