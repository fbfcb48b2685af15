package usecase_test

import (
	"context"
	"time"

	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (r *memLedgerRepo) Create(_ context.Context, e *entity.LedgerEntry) error {
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memLedgerRepo) ListAll(_ context.Context) ([]*entity.LedgerEntry, error) {
	return append([]*entity.LedgerEntry(nil), r.entries...), nil
}

func (r *memLedgerRepo) ListByUser(_ context.Context, userID string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) ListInRange(_ context.Context, start, end time.Time) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) DeleteByID(_ context.Context, id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memLedgerRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

type memSaleRepo struct {
	sales []*entity.Sale
}

func (r *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *memSaleRepo) ListAll(_ context.Context) ([]*entity.Sale, error) {
	return append([]*entity.Sale(nil), r.sales...), nil
}

func (r *memSaleRepo) ListByUser(_ context.Context, userID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSaleRepo) ListInRange(_ context.Context, start, end time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSaleRepo) DeleteByID(_ context.Context, id string) error {
	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memSaleRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.UserID != userID {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

type memStockRepo struct {
	movements []*entity.StockMovement
}

func (r *memStockRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memStockRepo) ListAll(_ context.Context) ([]*entity.StockMovement, error) {
	return append([]*entity.StockMovement(nil), r.movements...), nil
}

func (r *memStockRepo) ListByUser(_ context.Context, userID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockMovement, error) {
	if len(r.movements) <= limit {
		return append([]*entity.StockMovement(nil), r.movements...), nil
	}
	return append([]*entity.StockMovement(nil), r.movements[len(r.movements)-limit:]...), nil
}

func (r *memStockRepo) ListInRange(_ context.Context, start, end time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if !m.Date.Before(start) && !m.Date.After(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memStockRepo) DeleteByID(_ context.Context, id string) error {
	for i, m := range r.movements {
		if m.ID == id {
			r.movements = append(r.movements[:i], r.movements[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memStockRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

// fakeTx pasa los repositorios en memoria tal cual; no hay rollback real,
// suficiente para verificar qué borra o escribe cada caso de uso.
type fakeTx struct {
	users  *memUserRepo
	ledger *memLedgerRepo
	sales  *memSaleRepo
	stock  *memStockRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(
	repository.UserRepository,
	repository.LedgerRepository,
	repository.SaleRepository,
	repository.StockRepository,
) error) error {
	return fn(t.users, t.ledger, t.sales, t.stock)
}

// newFixture arma el juego completo de fakes compartido por los tests.
func newFixture() (*memUserRepo, *memLedgerRepo, *memSaleRepo, *memStockRepo, *fakeTx) {
	users := newMemUserRepo()
	ledger := &memLedgerRepo{}
	sales := &memSaleRepo{}
	stock := &memStockRepo{}
	return users, ledger, sales, stock, &fakeTx{users: users, ledger: ledger, sales: sales, stock: stock}
}
