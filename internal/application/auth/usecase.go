// Package auth implementa el ciclo de sesión: Anónimo → (login) →
// Autenticado(user) → (logout) → Anónimo.
package auth

import (
	"context"
	"time"

	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
	"github.com/savane-sarl/gestion-api/pkg/jwt"
	"github.com/savane-sarl/gestion-api/pkg/password"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionRevoker es el puerto hacia el almacén de sesiones revocadas.
// Puede ser nil: en ese caso el logout solo limpia la cookie del cliente.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// UseCase casos de uso de autenticación: login y logout.
type UseCase struct {
	userRepo repository.UserRepository
	revoker  SessionRevoker
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth. revoker puede ser nil.
func NewUseCase(userRepo repository.UserRepository, revoker SessionRevoker, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite el token de sesión.
// Usuario desconocido y contraseña incorrecta devuelven el mismo
// ErrInvalidCredentials: la respuesta no revela cuál de los dos falló.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username,
		user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Logout revoca la sesión hasta su expiración natural.
func (uc *UseCase) Logout(ctx context.Context, sess *jwt.Session) error {
	if uc.revoker == nil {
		return nil
	}
	return uc.revoker.Revoke(ctx, sess.TokenID, time.Until(sess.ExpiresAt))
}

// ToUserResponse mapea la entidad al DTO expuesto (nunca incluye el hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Department: u.Department,
		Role:       u.Role.String(),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
