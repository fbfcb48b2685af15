package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savane-sarl/gestion-api/internal/application/dto"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
	"github.com/savane-sarl/gestion-api/internal/domain"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/pkg/password"
)

func validCreateRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username:   "jdupont",
		FullName:   "Jean Dupont",
		Department: "COMPTABILITÉ",
		Role:       string(entity.RoleAccounting),
		Password:   "secreto123",
	}
}

func TestUserCreate_AltaValida(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "debe asignarse un id")
	assert.Equal(t, "jdupont", out.Username)
	assert.Equal(t, string(entity.RoleAccounting), out.Role)

	stored, err := users.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, password.Verify(stored.PasswordHash, "secreto123"),
		"el hash almacenado debe verificar la contraseña original")
	assert.NotContains(t, stored.PasswordHash, "secreto123",
		"la contraseña nunca se guarda en claro")
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)

	_, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	in := validCreateRequest()
	in.FullName = "Otro Nombre"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestUserCreate_Validaciones(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)
	ctx := context.Background()

	in := validCreateRequest()
	in.Username = "ab"
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username demasiado corto")

	in = validCreateRequest()
	in.Role = "superadmin"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera del catálogo cerrado")

	in = validCreateRequest()
	in.Password = "12345"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "contraseña demasiado corta")
}

func TestUserUpdate_PasswordVacioConservaHash(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	before, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, dto.UpdateUserRequest{
		Username:   "jdupont",
		FullName:   "Jean Dupont Actualizado",
		Department: "FINANZAS",
		Role:       string(entity.RoleFinance),
		Password:   "",
	})
	require.NoError(t, err)

	after, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash,
		"password vacío no debe tocar el hash")
	assert.Equal(t, entity.RoleFinance, after.Role)
	assert.Equal(t, "Jean Dupont Actualizado", after.FullName)
}

func TestUserUpdate_PasswordNuevoRegeneraHash(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	in := dto.UpdateUserRequest{
		Username: "jdupont",
		FullName: "Jean Dupont",
		Role:     string(entity.RoleAccounting),
		Password: "nuevaclave",
	}
	_, err = uc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	after, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify(after.PasswordHash, "nuevaclave"))
	assert.False(t, password.Verify(after.PasswordHash, "secreto123"))
}

func TestUserDelete_RechazaAutoeliminacion(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)

	err := uc.Delete(context.Background(), "mismo-id", "mismo-id")
	assert.ErrorIs(t, err, domain.ErrSelfDeletion)
}

func TestUserDelete_ProtegeAdministradorPorDefecto(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)
	ctx := context.Background()

	hash, err := password.Hash("adminpass")
	require.NoError(t, err)
	admin := &entity.User{
		ID:           "admin-id",
		Username:     entity.DefaultAdminUsername,
		FullName:     "Administrador",
		Role:         entity.RoleManagement,
		PasswordHash: hash,
	}
	require.NoError(t, users.Create(ctx, admin))

	err = uc.Delete(ctx, "admin-id", "otro-actor")
	assert.ErrorIs(t, err, domain.ErrProtectedUser)
}

func TestUserDelete_BorraRegistrosDelUsuario(t *testing.T) {
	users, ledger, sales, stock, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ledger.Create(ctx, &entity.LedgerEntry{ID: "e1", Date: day, UserID: created.ID}))
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "s1", Date: day, UserID: created.ID}))
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "s2", Date: day, UserID: "otro"}))
	require.NoError(t, stock.Create(ctx, &entity.StockMovement{ID: "m1", Date: day, UserID: created.ID}))

	require.NoError(t, uc.Delete(ctx, created.ID, "actor-direccion"))

	gone, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "el usuario debe desaparecer")

	entries, _ := ledger.ListAll(ctx)
	assert.Empty(t, entries, "sus asientos deben borrarse")

	remaining, _ := sales.ListAll(ctx)
	require.Len(t, remaining, 1, "las ventas de otros usuarios se conservan")
	assert.Equal(t, "s2", remaining[0].ID)

	movements, _ := stock.ListAll(ctx)
	assert.Empty(t, movements)
}

func TestUserDelete_NoExiste(t *testing.T) {
	users, _, _, _, tx := newFixture()
	uc := usecase.NewUserUseCase(users, tx)

	err := uc.Delete(context.Background(), "inexistente", "actor")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
