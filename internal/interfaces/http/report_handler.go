package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/report"
)

// ReportHandler maneja la selección de fechas y la descarga de informes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler de informes.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SelectDatesForm devuelve el descriptor del formulario de fechas.
func (h *ReportHandler) SelectDatesForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": "select_report_dates"})
}

// SelectDates godoc
// @Summary      Validar el rango de fechas del informe
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportDatesRequest  true  "start_date y end_date (YYYY-MM-DD)"
// @Success      200   {object}  dto.ReportDatesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /select_report_dates [post]
func (h *ReportHandler) SelectDates(c *fiber.Ctx) error {
	var in dto.ReportDatesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if _, _, err := report.ValidateRange(in.StartDate, in.EndDate); err != nil {
		return respondError(c, err)
	}

	q := url.Values{}
	q.Set("start_date", in.StartDate)
	q.Set("end_date", in.EndDate)
	return c.JSON(dto.ReportDatesResponse{
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		DownloadURL: "/download_report?" + q.Encode(),
	})
}

// Download godoc
// @Summary      Descargar el informe del periodo
// @Tags         reports
// @Produce      application/pdf
// @Param        start_date  query  string  true   "inicio del periodo (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "fin del periodo (YYYY-MM-DD)"
// @Param        format      query  string  false  "pdf (por defecto) o xlsx"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /download_report [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	doc, err := h.uc.Build(c.Context(), c.Query("start_date"), c.Query("end_date"), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Bytes)
}
