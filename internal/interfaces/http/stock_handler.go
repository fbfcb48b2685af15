package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
)

// StockHandler maneja los movimientos de inventario.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RecordForm devuelve el descriptor del formulario de movimiento.
func (h *StockHandler) RecordForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": "record_stock"})
}

// Record godoc
// @Summary      Registrar un movimiento de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "fecha, producto, entradas, salidas"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /record/stock [post]
func (h *StockHandler) Record(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
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
// @Summary      Eliminar un movimiento de stock
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "id del movimiento"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /delete_stock/{id} [post]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ResultResponse{Success: true, Message: "movimiento eliminado"})
}
