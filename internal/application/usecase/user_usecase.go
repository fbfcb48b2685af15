package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	appauth "github.com/savane-sarl/gestion-api/internal/application/auth"
	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/domain/repository"
	"github.com/savane-sarl/gestion-api/pkg/password"
)

// UserUseCase administración de usuarios (solo dirección).
type UserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el runner transaccional.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *appauth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario; domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return appauth.ToUserResponse(user), nil
}

// Create da de alta un usuario con rol independiente del departamento.
// Retorna domain.ErrUsernameExists si el username ya está tomado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: el nombre de usuario debe tener al menos 3 caracteres", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, fmt.Errorf("%w: el nombre completo es obligatorio", domain.ErrInvalidInput)
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: rol desconocido: %s", domain.ErrInvalidInput, in.Role)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		FullName:     in.FullName,
		Department:   in.Department,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return appauth.ToUserResponse(user), nil
}

// Update edita un usuario. Password vacío conserva el hash existente.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: el nombre de usuario debe tener al menos 3 caracteres", domain.ErrInvalidInput)
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: rol desconocido: %s", domain.ErrInvalidInput, in.Role)
	}

	user.Username = username
	user.FullName = in.FullName
	user.Department = in.Department
	user.Role = role
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
		}
		hash, err := password.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return appauth.ToUserResponse(user), nil
}

// Delete elimina un usuario y, en la misma transacción, todos sus registros
// (asientos, ventas y movimientos de stock). Se rechaza la autoeliminación y
// la cuenta de administrador por defecto.
func (uc *UserUseCase) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return domain.ErrSelfDeletion
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.IsDefaultAdmin() {
		return domain.ErrProtectedUser
	}

	return uc.tx.Run(ctx, func(
		userRepo repository.UserRepository,
		ledgerRepo repository.LedgerRepository,
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := ledgerRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := saleRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := stockRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		return userRepo.Delete(ctx, id)
	})
}
