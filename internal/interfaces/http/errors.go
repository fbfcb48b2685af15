package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/domain"
)

// respondError mapea la taxonomía de errores de dominio a respuestas HTTP.
// Ningún error llega al cliente como stack trace; el catch-all se registra y
// degrada a un 500 genérico.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Mensaje genérico: no se revela si falló el usuario o la contraseña.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "INVALID_CREDENTIALS", Message: domain.ErrInvalidCredentials.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		return unauthorizedView(c)
	case errors.Is(err, domain.ErrSelfDeletion), errors.Is(err, domain.ErrProtectedUser):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "PROTECTED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUsernameExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "USERNAME_EXISTS", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrRender):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "RENDER_FAILED", Message: err.Error(),
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno del servidor",
	})
}

// ErrorHandler es el handler de errores global de Fiber (errores devueltos
// por handlers o el middleware recover).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
			Code: "HTTP_ERROR", Message: fiberErr.Message,
		})
	}
	return respondError(c, err)
}
