package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/savane-sarl/gestion-api/internal/application/auth"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/pkg/jwt"
)

// Locals keys para la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
	LocalSession  = "session"
)

// SessionCookie nombre de la cookie de sesión (alternativa al Bearer token).
const SessionCookie = "session"

// AuthMiddleware valida el token de sesión (Bearer o cookie), verifica que no
// esté revocado y carga la identidad en c.Locals. Sin sesión válida responde
// 401 con la ruta de login y el destino original para el redirect post-login.
func AuthMiddleware(jwtSecret string, revoker auth.SessionRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies(SessionCookie)
		}
		if tokenString == "" {
			return unauthenticated(c, "MISSING_TOKEN", "autenticación requerida")
		}
		sess, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthenticated(c, "INVALID_TOKEN", "sesión inválida o expirada")
		}
		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Context(), sess.TokenID)
			if err != nil {
				// Si el almacén de revocación no responde no podemos saber si
				// la sesión sigue abierta; se rechaza en vez de aceptar a ciegas.
				log.Error().Err(err).Str("token_id", sess.TokenID).Msg("verificación de revocación")
				return unauthenticated(c, "SESSION_UNVERIFIED", "no se pudo verificar la sesión")
			}
			if revoked {
				return unauthenticated(c, "SESSION_CLOSED", "la sesión fue cerrada")
			}
		}
		c.Locals(LocalUserID, sess.UserID)
		c.Locals(LocalUsername, sess.Username)
		c.Locals(LocalRole, sess.Role)
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// unauthenticated responde 401 conservando la ruta solicitada en ?next=.
func unauthenticated(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:     code,
		Message:  message,
		Redirect: "/login?next=" + c.OriginalURL(),
	})
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetSession devuelve la sesión parseada (para el logout).
func GetSession(c *fiber.Ctx) *jwt.Session {
	s, _ := c.Locals(LocalSession).(*jwt.Session)
	return s
}
