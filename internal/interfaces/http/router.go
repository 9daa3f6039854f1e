package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/validate"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *crm.CustomerUseCase
	LeadUC      *crm.LeadUseCase
	DashboardUC *analytics.DashboardUseCase
	Users       repository.UserRepository
	JWTSecret   string
	Validator   *validate.Validator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	protected.Get("/auth/profile", authHandler.Profile)

	// Users (protegido, solo admin)
	users := protected.Group("/users", RequireAdmin)
	users.Get("/", authHandler.ListUsers)

	// Customers (protegido, acotado al dueño)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Validator)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Leads (protegido, anidado bajo el customer)
	leads := customers.Group("/:customerId/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.Validator)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/:leadId", leadHandler.GetByID)
	leads.Put("/:leadId", leadHandler.Update)
	leads.Delete("/:leadId", leadHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Validator)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
