package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
)

// LedgerHandler maneja los registros de ingresos y gastos.
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler de ingresos y gastos.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordForm devuelve el descriptor del formulario de registro.
func (h *LedgerHandler) RecordForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": "record_income_expense"})
}

// Record godoc
// @Summary      Registrar un ingreso o gasto
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "fecha, descripción, monto, tipo"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /record/income_expense [post]
func (h *LedgerHandler) Record(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar un registro de ingreso o gasto
// @Tags         ledger
// @Produce      json
// @Param        id  path  string  true  "id del registro"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /delete_income_expense/{id} [post]
func (h *LedgerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ResultResponse{Success: true, Message: "registro eliminado"})
}
