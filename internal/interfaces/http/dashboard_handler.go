package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

// DashboardHandler despacha al panel que corresponde al rol de la sesión.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler de paneles.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dispatch godoc
// @Summary      Redirige al panel según el rol del usuario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *DashboardHandler) Dispatch(c *fiber.Ctx) error {
	view := usecase.LandingView(entity.Role(GetRole(c)))
	if view == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol de la sesión no tiene un panel asignado",
		})
	}
	return c.JSON(fiber.Map{"redirect": "/dashboard/" + view})
}

// Accounting godoc
// @Summary      Panel de contabilidad
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AccountingDashboard
// @Security     BearerAuth
// @Router       /dashboard/accounting [get]
func (h *DashboardHandler) Accounting(c *fiber.Ctx) error {
	out, err := h.uc.Accounting(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Commercial godoc
// @Summary      Panel comercial (agente o jefe)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.CommercialDashboard
// @Security     BearerAuth
// @Router       /dashboard/commercial [get]
func (h *DashboardHandler) Commercial(c *fiber.Ctx) error {
	out, err := h.uc.Commercial(c.Context(), GetUserID(c), entity.Role(GetRole(c)))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Panel de inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StockDashboard
// @Security     BearerAuth
// @Router       /dashboard/stock [get]
func (h *DashboardHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finance godoc
// @Summary      Panel financiero
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.FinanceDashboard
// @Security     BearerAuth
// @Router       /dashboard/finance [get]
func (h *DashboardHandler) Finance(c *fiber.Ctx) error {
	out, err := h.uc.Finance(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Management godoc
// @Summary      Panel de dirección general
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ManagementDashboard
// @Security     BearerAuth
// @Router       /dashboard/management [get]
func (h *DashboardHandler) Management(c *fiber.Ctx) error {
	out, err := h.uc.Management(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
