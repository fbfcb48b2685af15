package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/savane-sarl/gestion-api/internal/application/auth"
	"github.com/savane-sarl/gestion-api/internal/application/report"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
	infraexcel "github.com/savane-sarl/gestion-api/internal/infrastructure/excel"
	infrapdf "github.com/savane-sarl/gestion-api/internal/infrastructure/pdf"
	"github.com/savane-sarl/gestion-api/internal/infrastructure/postgres"
	"github.com/savane-sarl/gestion-api/internal/infrastructure/redisstore"
	httpRouter "github.com/savane-sarl/gestion-api/internal/interfaces/http"
	"github.com/savane-sarl/gestion-api/pkg/config"
	"github.com/savane-sarl/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Migraciones idempotentes antes de abrir el pool, contra el mismo DSN que usa el pool.
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
	ledgerRepo := postgres.NewLedgerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Revocación de sesiones; sin REDIS_ADDR el logout solo limpia la cookie.
	var revoker auth.SessionRevoker
	if cfg.Redis.Addr != "" {
		denylist, err := redisstore.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer denylist.Close()
		revoker = denylist
	}

	authUC := auth.NewUseCase(userRepo, revoker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, txRunner)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, txRunner)
	saleUC := usecase.NewSaleUseCase(saleRepo, txRunner)
	stockUC := usecase.NewStockUseCase(stockRepo, txRunner)
	dashboardUC := usecase.NewDashboardUseCase(userRepo, ledgerRepo, saleRepo, stockRepo)
	reportUC := report.NewUseCase(
		ledgerRepo, saleRepo, stockRepo,
		infrapdf.NewMarotoReportGenerator(),
		infraexcel.NewExcelizeReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion Savane API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		LedgerUC:    ledgerUC,
		SaleUC:      saleUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		Revoker:     revoker,
	})

	var metrics *httpRouter.MetricsServer
	if cfg.Metrics.Enabled {
		metrics = httpRouter.NewMetricsServer(cfg.Metrics.Addr)
		go func() {
			if err := metrics.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("listener de métricas finalizado")
			}
		}()
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if metrics != nil {
		if err := metrics.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del listener de métricas")
		}
	}

	log.Info().Msg("aplicación detenida")
}
