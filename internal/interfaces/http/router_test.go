package http_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savane-sarl/gestion-api/internal/application/usecase"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
	apphttp "github.com/savane-sarl/gestion-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type stubLedgerRepo struct{ entries []*entity.LedgerEntry }

func (r *stubLedgerRepo) Create(_ context.Context, e *entity.LedgerEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *stubLedgerRepo) ListAll(context.Context) ([]*entity.LedgerEntry, error) {
	return r.entries, nil
}
func (r *stubLedgerRepo) ListByUser(context.Context, string) ([]*entity.LedgerEntry, error) {
	return r.entries, nil
}
func (r *stubLedgerRepo) ListInRange(context.Context, time.Time, time.Time) ([]*entity.LedgerEntry, error) {
	return r.entries, nil
}
func (r *stubLedgerRepo) DeleteByID(context.Context, string) error   { return domain.ErrNotFound }
func (r *stubLedgerRepo) DeleteByUser(context.Context, string) error { return nil }

type stubSaleRepo struct{ sales []*entity.Sale }

func (r *stubSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}
func (r *stubSaleRepo) ListAll(context.Context) ([]*entity.Sale, error) { return r.sales, nil }
func (r *stubSaleRepo) ListByUser(context.Context, string) ([]*entity.Sale, error) {
	return r.sales, nil
}
func (r *stubSaleRepo) ListInRange(context.Context, time.Time, time.Time) ([]*entity.Sale, error) {
	return r.sales, nil
}
func (r *stubSaleRepo) DeleteByID(context.Context, string) error   { return domain.ErrNotFound }
func (r *stubSaleRepo) DeleteByUser(context.Context, string) error { return nil }

type stubStockRepo struct{ movements []*entity.StockMovement }

func (r *stubStockRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *stubStockRepo) ListAll(context.Context) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *stubStockRepo) ListByUser(context.Context, string) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *stubStockRepo) ListRecent(context.Context, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *stubStockRepo) ListInRange(context.Context, time.Time, time.Time) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *stubStockRepo) DeleteByID(context.Context, string) error   { return domain.ErrNotFound }
func (r *stubStockRepo) DeleteByUser(context.Context, string) error { return nil }

type stubTx struct {
	ledger *stubLedgerRepo
	sales  *stubSaleRepo
	stock  *stubStockRepo
}

func (t *stubTx) Run(ctx context.Context, fn func(
	repository.UserRepository,
	repository.LedgerRepository,
	repository.SaleRepository,
	repository.StockRepository,
) error) error {
	return fn(nil, t.ledger, t.sales, t.stock)
}

// buildRouterApp monta el router real con casos de uso sobre repositorios en
// memoria; suficiente para verificar rutas, métodos y guardas.
func buildRouterApp() (*fiber.App, *stubTx) {
	tx := &stubTx{ledger: &stubLedgerRepo{}, sales: &stubSaleRepo{}, stock: &stubStockRepo{}}
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:  usecase.NewLedgerUseCase(tx.ledger, tx),
		SaleUC:    usecase.NewSaleUseCase(tx.sales, tx),
		StockUC:   usecase.NewStockUseCase(tx.stock, tx),
		JWTSecret: testJWTSecret,
	})
	return app, tx
}

func postJSON(t *testing.T, app *fiber.App, path, token, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Los paneles operativos aceptan el alta desde la propia vista
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_PanelContableAceptaAlta(t *testing.T) {
	app, tx := buildRouterApp()

	resp := postJSON(t, app, "/dashboard/accounting", tokenForRole(t, "accounting"),
		`{"date":"2025-03-10","description":"Venta de contado","amount":"150.00","type":"income"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, tx.ledger.entries, 1)
	assert.Equal(t, "Venta de contado", tx.ledger.entries[0].Description)
}

func TestRouter_PanelComercialAltaSoloParaElAgente(t *testing.T) {
	app, tx := buildRouterApp()
	body := `{"date":"2025-03-10","product":"Cemento 50kg","quantity":3,"unit_price":"12.50"}`

	// 1. El jefe comercial entra al panel en solo lectura.
	resp := postJSON(t, app, "/dashboard/commercial", tokenForRole(t, "commercial_chief"), body)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, tx.sales.sales)

	// 2. El agente sí registra la venta.
	resp = postJSON(t, app, "/dashboard/commercial", tokenForRole(t, "commercial_agent"), body)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, tx.sales.sales, 1)
	assert.Equal(t, "Cemento 50kg", tx.sales.sales[0].Product)
}

func TestRouter_PanelDeAlmacenAceptaAlta(t *testing.T) {
	app, tx := buildRouterApp()

	resp := postJSON(t, app, "/dashboard/stock", tokenForRole(t, "stock"),
		`{"date":"2025-03-10","product":"Varilla 12mm","quantity_in":40}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, tx.stock.movements, 1)
	assert.Equal(t, int64(40), tx.stock.movements[0].QuantityIn)
}
