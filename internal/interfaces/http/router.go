package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savane-sarl/gestion-api/internal/application/auth"
	"github.com/savane-sarl/gestion-api/internal/application/report"
	"github.com/savane-sarl/gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	LedgerUC    *usecase.LedgerUseCase
	SaleUC      *usecase.SaleUseCase
	StockUC     *usecase.StockUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *report.UseCase
	JWTSecret   string
	Revoker     auth.SessionRevoker
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (token Bearer o cookie de sesión)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Revoker))

	protected.Get("/logout", authHandler.Logout)

	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	saleHandler := NewSaleHandler(deps.SaleUC)
	stockHandler := NewStockHandler(deps.StockUC)

	// Paneles por rol. Los paneles operativos aceptan POST para crear el
	// registro desde la misma vista; en el comercial solo el agente crea
	// ventas (el jefe entra en solo lectura).
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Dispatch)
	protected.Get("/dashboard/accounting", Guard("/dashboard/accounting"), dashboardHandler.Accounting)
	protected.Post("/dashboard/accounting", Guard("/dashboard/accounting"), ledgerHandler.Record)
	protected.Get("/dashboard/commercial", Guard("/dashboard/commercial"), dashboardHandler.Commercial)
	protected.Post("/dashboard/commercial", Guard("/record/sale"), saleHandler.Record)
	protected.Get("/dashboard/stock", Guard("/dashboard/stock"), dashboardHandler.Stock)
	protected.Post("/dashboard/stock", Guard("/dashboard/stock"), stockHandler.Record)
	protected.Get("/dashboard/finance", Guard("/dashboard/finance"), dashboardHandler.Finance)
	protected.Get("/dashboard/management", Guard("/dashboard/management"), dashboardHandler.Management)

	// Registro de operaciones (atajos equivalentes al POST del panel)
	protected.Get("/record/income_expense", Guard("/record/income_expense"), ledgerHandler.RecordForm)
	protected.Post("/record/income_expense", Guard("/record/income_expense"), ledgerHandler.Record)
	protected.Get("/record/sale", Guard("/record/sale"), saleHandler.RecordForm)
	protected.Post("/record/sale", Guard("/record/sale"), saleHandler.Record)
	protected.Get("/record/stock", Guard("/record/stock"), stockHandler.RecordForm)
	protected.Post("/record/stock", Guard("/record/stock"), stockHandler.Record)

	// Administración de usuarios (solo dirección)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/manage_users", Guard("/manage_users"), userHandler.List)
	protected.Get("/create_user", Guard("/create_user"), userHandler.CreateForm)
	protected.Post("/create_user", Guard("/create_user"), userHandler.Create)
	protected.Get("/edit_user/:id", Guard("/edit_user"), userHandler.EditForm)
	protected.Post("/edit_user/:id", Guard("/edit_user"), userHandler.Update)
	protected.Post("/delete_user/:id", Guard("/delete_user"), userHandler.Delete)

	// Borrado de registros (solo dirección)
	protected.Post("/delete_income_expense/:id", Guard("/delete_income_expense"), ledgerHandler.Delete)
	protected.Post("/delete_sale/:id", Guard("/delete_sale"), saleHandler.Delete)
	protected.Post("/delete_stock/:id", Guard("/delete_stock"), stockHandler.Delete)

	// Informes (solo dirección)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/select_report_dates", Guard("/select_report_dates"), reportHandler.SelectDatesForm)
	protected.Post("/select_report_dates", Guard("/select_report_dates"), reportHandler.SelectDates)
	protected.Get("/download_report", Guard("/download_report"), reportHandler.Download)
}
