package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/auth"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// LoginForm godoc
// @Summary      Descriptor del formulario de login
// @Tags         auth
// @Produce      json
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"view": "login",
		"next": c.Query("next", "/dashboard"),
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	// Cookie de sesión para navegadores; los clientes de API usan el token.
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	out.Redirect = c.Query("next", "/dashboard")
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token hasta su expiración)
// @Tags         auth
// @Produce      json
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		if err := h.uc.Logout(c.Context(), sess); err != nil {
			return respondError(c, err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"redirect": "/login"})
}
