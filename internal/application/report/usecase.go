package report

import (
	"context"
	"fmt"
	"time"

	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
)

// Formatos de documento soportados.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

const dateLayout = "2006-01-02"

// Data es todo lo que un generador necesita para renderizar el informe:
// el intervalo, las tres listas filtradas, los agregados sobre ese mismo
// conjunto y la disponibilidad de stock sobre el historial completo.
type Data struct {
	Start        time.Time
	End          time.Time
	Entries      []*entity.LedgerEntry
	Sales        []*entity.Sale
	Movements    []*entity.StockMovement
	Ledger       LedgerTotals
	SaleTotals   SaleTotals
	Availability map[string]int64
	GeneratedAt  time.Time
}

// Generator es el puerto de salida hacia el renderizador del documento
// (Maroto para PDF, Excelize para XLSX). Cualquier adaptador o mock debe
// implementar esta interfaz.
type Generator interface {
	Generate(ctx context.Context, data *Data) ([]byte, error)
}

// Document es el resultado listo para descargar.
type Document struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

// UseCase arma el informe de un intervalo cerrado de fechas.
type UseCase struct {
	ledgerRepo repository.LedgerRepository
	saleRepo   repository.SaleRepository
	stockRepo  repository.StockRepository
	pdf        Generator
	xlsx       Generator
}

// NewUseCase construye el caso de uso con los puertos de persistencia y los generadores.
func NewUseCase(
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	pdf, xlsx Generator,
) *UseCase {
	return &UseCase{
		ledgerRepo: ledgerRepo,
		saleRepo:   saleRepo,
		stockRepo:  stockRepo,
		pdf:        pdf,
		xlsx:       xlsx,
	}
}

// ValidateRange parsea y valida el intervalo: ambas fechas obligatorias y
// start <= end. El extremo final se ensancha al último instante de su día
// para que los registros de esa fecha queden incluidos.
func ValidateRange(startStr, endStr string) (start, end time.Time, err error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: la fecha de inicio y la fecha de fin son obligatorias", domain.ErrInvalidInput)
	}
	start, err = time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha de inicio inválida (formato AAAA-MM-DD)", domain.ErrInvalidInput)
	}
	end, err = time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha de fin inválida (formato AAAA-MM-DD)", domain.ErrInvalidInput)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: la fecha de inicio debe ser anterior o igual a la fecha de fin", domain.ErrInvalidInput)
	}
	return start, EndOfDay(end), nil
}

// Build genera el documento descargable del intervalo [start, end].
// Un fallo del renderizador se reporta como domain.ErrRender, nunca como pánico.
func (uc *UseCase) Build(ctx context.Context, startStr, endStr, format string) (*Document, error) {
	start, end, err := ValidateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	entries, err := uc.ledgerRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	movements, err := uc.stockRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	// La disponibilidad sale del historial completo, ignorando el filtro del informe.
	allMovements, err := uc.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	data := &Data{
		Start:        start,
		End:          end,
		Entries:      entries,
		Sales:        sales,
		Movements:    movements,
		Ledger:       SumLedger(entries),
		SaleTotals:   SumSales(sales),
		Availability: StockAvailability(allMovements),
		GeneratedAt:  time.Now(),
	}

	var gen Generator
	var contentType, ext string
	switch format {
	case FormatXLSX:
		gen = uc.xlsx
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	case FormatPDF, "":
		gen = uc.pdf
		contentType = "application/pdf"
		ext = "pdf"
	default:
		return nil, fmt.Errorf("%w: formato de informe desconocido: %s", domain.ErrInvalidInput, format)
	}

	raw, err := gen.Generate(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	filename := fmt.Sprintf("informe_%s_%s.%s",
		start.Format("20060102"), end.Format("20060102"), ext)
	return &Document{Filename: filename, ContentType: contentType, Bytes: raw}, nil
}
