package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/savane-sarl/gestion-api/internal/domain/entity"
	"github.com/savane-sarl/gestion-api/internal/infrastructure/postgres"
	"github.com/savane-sarl/gestion-api/pkg/config"
	"github.com/savane-sarl/gestion-api/pkg/logger"
	"github.com/savane-sarl/gestion-api/pkg/password"
)

// Siembra la cuenta inicial de dirección general. Es idempotente: solo
// escribe cuando la tabla de usuarios está vacía.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if count > 0 {
		log.Info().Int64("usuarios", count).Msg("la tabla de usuarios no está vacía, nada que sembrar")
		return
	}

	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if plain == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es obligatoria para crear el administrador")
	}

	hash, err := password.Hash(plain)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash de contraseña")
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Username:     entity.DefaultAdminUsername,
		FullName:     "Administrador",
		Department:   "DIRECCIÓN GENERAL",
		Role:         entity.RoleManagement,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario administrador")
	}

	log.Info().Str("username", admin.Username).Msg("administrador creado")
}
