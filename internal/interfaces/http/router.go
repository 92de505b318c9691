package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vcrm-app/vcrm-api/internal/application/analytics"
	"github.com/vcrm-app/vcrm-api/internal/application/auth"
	"github.com/vcrm-app/vcrm-api/internal/application/crm"
	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	ContactUC     *crm.ContactUseCase
	OpportunityUC *crm.OpportunityUseCase
	TaskUC        *crm.TaskUseCase
	InvoiceUC     *crm.InvoiceUseCase
	ForecastUC    *analytics.ForecastUseCase
	StatsUC       *analytics.StatsUseCase
	SearchUC      *analytics.SearchUseCase
	ExportUC      *analytics.ExportUseCase
	JWTSecret     string
}

// Router registra le rotte dell'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (pubblico)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotte protette (richiedono Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Profilo (protetto)
	profile := protected.Group("/auth")
	profile.Get("/me", authHandler.Me)
	profile.Put("/profile", authHandler.UpdateProfile)
	profile.Put("/password", authHandler.ChangePassword)

	// Contacts (protetto)
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Opportunities (protetto)
	opportunities := protected.Group("/opportunities")
	opportunityHandler := NewOpportunityHandler(deps.OpportunityUC)
	opportunities.Get("/", opportunityHandler.List)
	opportunities.Post("/", opportunityHandler.Create)
	opportunities.Get("/:id", opportunityHandler.GetByID)
	opportunities.Put("/:id", opportunityHandler.Update)
	opportunities.Patch("/:id/stage", opportunityHandler.MoveStage)
	opportunities.Delete("/:id", opportunityHandler.Delete)

	// Tasks (protetto)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/toggle", taskHandler.Toggle)
	tasks.Get("/:id/calendar", taskHandler.Calendar)
	tasks.Delete("/:id", taskHandler.Delete)

	// Invoices (protetto; le scritture sono riservate agli admin — il
	// fatturato è dell'azienda, non del singolo commerciale)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	adminOnly := RequireRole(entity.RoleAdmin)
	invoices.Post("/", adminOnly, invoiceHandler.Create)
	invoices.Put("/:id", adminOnly, invoiceHandler.Update)
	invoices.Delete("/:id", adminOnly, invoiceHandler.Delete)

	// Dashboard: forecast + statistiche (protetto)
	dashboardHandler := NewDashboardHandler(deps.ForecastUC, deps.StatsUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/forecast", dashboardHandler.Forecast)
	dashboard.Get("/forecast/pdf", dashboardHandler.ForecastPDF)
	protected.Get("/stats", dashboardHandler.Stats)

	// Ricerca globale (protetto)
	searchHandler := NewSearchHandler(deps.SearchUC)
	protected.Get("/search", searchHandler.Search)

	// Export (protetto)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export", exportHandler.Export)
}
