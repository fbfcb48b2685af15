package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
)

// routeRoles es la tabla declarativa de permisos por ruta. Una sola función
// de autorización (RequireRole) la consulta; no hay comparaciones de rol
// dispersas en los handlers.
var routeRoles = map[string][]entity.Role{
	"/dashboard/accounting":  {entity.RoleAccounting},
	"/dashboard/commercial":  {entity.RoleCommercialAgent, entity.RoleCommercialChief},
	"/dashboard/stock":       {entity.RoleStock},
	"/dashboard/finance":     {entity.RoleFinance},
	"/dashboard/management":  {entity.RoleManagement},
	"/record/income_expense": {entity.RoleAccounting},
	"/record/sale":           {entity.RoleCommercialAgent},
	"/record/stock":          {entity.RoleStock},
	"/manage_users":          {entity.RoleManagement},
	"/create_user":           {entity.RoleManagement},
	"/edit_user":             {entity.RoleManagement},
	"/delete_user":           {entity.RoleManagement},
	"/delete_income_expense": {entity.RoleManagement},
	"/delete_sale":           {entity.RoleManagement},
	"/delete_stock":          {entity.RoleManagement},
	"/select_report_dates":   {entity.RoleManagement},
	"/download_report":       {entity.RoleManagement},
}

// Guard devuelve el middleware de autorización para una ruta de la tabla.
// Una ruta sin entrada queda cerrada para todos los roles.
func Guard(route string) fiber.Handler {
	return RequireRole(routeRoles[route]...)
}

// RequireRole autoriza el acceso si el rol de la sesión está en el conjunto
// permitido. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 → sesión sin claim de rol (token malformado o legacy).
//   - 403 → rol no permitido: respuesta fija de no autorizado, nunca un redirect.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := entity.ParseRole(GetRole(c))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "la sesión no tiene un rol válido",
			})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return unauthorizedView(c)
	}
}

// unauthorizedView es la respuesta fija de acceso denegado.
func unauthorizedView(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Code:    "FORBIDDEN",
		Message: "no tiene permisos para acceder a esta vista",
	})
}
