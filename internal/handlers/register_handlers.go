package handlers

import (
	"github.com/fintrackio/fintrack_backend/cmd/docs"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, service.Account, service.Balance, service.Transaction)
	registerTransactionRoutes(v1, service.Transaction)
	registerObligationRoutes(v1, service.Obligation)
	registerBudgetRoutes(v1, service.Budget)
	registerCategoryRoutes(v1, service.Category)
	registerContactRoutes(v1, service.Contact)
	registerExchangeRateRoutes(v1, service.ExchangeRate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
