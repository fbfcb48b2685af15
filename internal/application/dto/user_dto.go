package dto

import "time"

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse salida con token de sesión.
type LoginResponse struct {
	Token    string       `json:"token"`
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect"` // vista de aterrizaje o ?next= original
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el caso de uso).
// El rol es un campo independiente del departamento.
type CreateUserRequest struct {
	Username   string `json:"username" form:"username"`
	FullName   string `json:"full_name" form:"full_name"`
	Department string `json:"department" form:"department"`
	Role       string `json:"role" form:"role"`
	Password   string `json:"password" form:"password"`
}

// UpdateUserRequest entrada para editar un usuario.
// Password vacío conserva el hash existente.
type UpdateUserRequest struct {
	Username   string `json:"username" form:"username"`
	FullName   string `json:"full_name" form:"full_name"`
	Department string `json:"department" form:"department"`
	Role       string `json:"role" form:"role"`
	Password   string `json:"password" form:"password"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
