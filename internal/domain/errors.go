package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameExists     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSelfDeletion       = errors.New("no puede eliminar su propia cuenta")
	ErrProtectedUser      = errors.New("no se puede eliminar la cuenta de administrador por defecto")
	ErrRender             = errors.New("error al generar el documento")
)
