package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/fixtures"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/seed"
	service "invoice-dashboard-backend/internal/services/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	userRepo := repository.NewUserRepository(db)

	dashboardService := service.NewService(invoiceRepo, customerRepo, revenueRepo)
	seeder := seed.New(db, fixtures.NewStatic())

	seedHandler := handler.NewSeedHandler(seeder)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	authHandler := handler.NewAuthHandler(userRepo, config.JWTSecret())

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// One-shot provisioning, safe to repeat
	api.GET("/seed", seedHandler.Seed)

	api.POST("/login", authHandler.Login)

	// Dashboard overview routes
	dash := api.Group("/dashboard")
	dash.GET("/cards", dashboardHandler.Cards)
	dash.GET("/revenue", dashboardHandler.Revenue)
	dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/pages", invoiceHandler.Pages)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/all", customerHandler.All)
	}
}
