// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockyard/internal/domain/depot"
	"stockyard/internal/domain/invoice"
	"stockyard/internal/domain/product"
	"stockyard/internal/domain/provider"
	"stockyard/internal/infrastructure/http/v1/handlers"
	"stockyard/internal/infrastructure/http/v1/middleware"
	"stockyard/internal/infrastructure/storage/postgres"
	"stockyard/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the shared database connection pool
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	depotHandler := handlers.NewDepotHandler(base,
		depot.NewService(postgres.NewDepotRepo(cfg.Pool)))
	productHandler := handlers.NewProductHandler(base,
		product.NewService(postgres.NewProductRepo(cfg.Pool)))
	providerHandler := handlers.NewProviderHandler(base,
		provider.NewService(postgres.NewProviderRepo(cfg.Pool)))
	invoiceHandler := handlers.NewInvoiceHandler(base,
		invoice.NewService(postgres.NewInvoiceRepo(cfg.Pool)))

	depots := router.Group("/depots")
	{
		depots.GET("/all", depotHandler.List)
		depots.POST("/create", depotHandler.Create)
		depots.GET("/depot/:id", depotHandler.Get)
		depots.PUT("/update/:id", depotHandler.Update)
		depots.DELETE("/delete/:id", depotHandler.Delete)
	}

	products := router.Group("/products")
	{
		products.GET("/all", productHandler.List)
		products.POST("/create", productHandler.Create)
		products.GET("/product/:id", productHandler.Get)
		products.PUT("/update/:id", productHandler.Update)
		products.DELETE("/delete/:id", productHandler.Delete)
	}

	providers := router.Group("/providers")
	{
		providers.GET("/all", providerHandler.List)
		providers.POST("/create", providerHandler.Create)
		providers.GET("/provider/:id", providerHandler.Get)
		providers.PUT("/update/:id", providerHandler.Update)
		providers.DELETE("/delete/:id", providerHandler.Delete)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("/all", invoiceHandler.List)
		invoices.POST("/create", invoiceHandler.Create)
		invoices.GET("/invoice/:id", invoiceHandler.Get)
		invoices.PUT("/update/:id", invoiceHandler.Update)
		invoices.DELETE("/delete/:id", invoiceHandler.Delete)
	}

	return router
}
