package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviceflow/serviceflow-api/internal/application/analytics"
	"github.com/serviceflow/serviceflow-api/internal/application/auth"
	"github.com/serviceflow/serviceflow-api/internal/application/debts"
	"github.com/serviceflow/serviceflow-api/internal/application/inventory"
	"github.com/serviceflow/serviceflow-api/internal/application/repairs"
	"github.com/serviceflow/serviceflow-api/internal/application/sales"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *inventory.ProductUseCase
	PartUC      *inventory.PartUseCase
	TicketUC    *sales.TicketUseCase
	ReceiptUC   *sales.ReceiptUseCase
	WorkOrderUC *repairs.WorkOrderUseCase
	DebtUC      *debts.DebtUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: lectura para todos, mutaciones solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Parts: lectura para todos, mutaciones solo admin
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Post("/", adminOnly, partHandler.Create)
	parts.Put("/:id", adminOnly, partHandler.Update)
	parts.Delete("/:id", adminOnly, partHandler.Delete)

	// Tickets (motor de ventas)
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC, deps.ReceiptUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/delinquents", ticketHandler.ListPending)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Put("/:id/pay", ticketHandler.Pay)
	tickets.Get("/:id/receipt", ticketHandler.Receipt)

	// Work orders (taller)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)
	workOrders.Put("/:id", workOrderHandler.Update)
	workOrders.Delete("/:id", adminOnly, workOrderHandler.Delete)

	// Morosos y estadísticas de pago
	debtHandler := NewDebtHandler(deps.DebtUC)
	protected.Get("/clients/delinquents", debtHandler.Delinquents)
	protected.Get("/payments/statistics", debtHandler.PaymentStatistics)

	// Dashboards
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", adminOnly, dashboardHandler.AdminSummary)
	protected.Get("/repairs/dashboard/summary", dashboardHandler.RepairsSummary)

	// Users (solo admin, salvo el cambio de contraseña que valida dentro del caso de uso)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/", adminOnly, userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Delete("/:id", adminOnly, userHandler.Delete)
}
