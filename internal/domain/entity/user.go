package entity

import "time"

// DefaultAdminUsername es la cuenta sembrada por cmd/seed; no se puede eliminar.
const DefaultAdminUsername = "administrator"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	FullName     string
	Department   string // texto libre; independiente del rol
	Role         Role
	PasswordHash string // pbkdf2:sha256, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDefaultAdmin indica si es la cuenta de administrador por defecto.
func (u *User) IsDefaultAdmin() bool {
	return u.Username == DefaultAdminUsername
}
