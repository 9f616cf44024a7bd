package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beaconhq/beacon/internal/interfaces/http/handlers"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
)

// CompanyRouteConfig holds dependencies for company routes.
type CompanyRouteConfig struct {
	CompanyHandler *handlers.CompanyHandler
	IntakeHandler  *handlers.IntakeHandler
	MediaHandler   *handlers.MediaHandler
	PublishHandler *handlers.PublishHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCompanyRoutes configures company, intake, media, and publish routes.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	companies := engine.Group("/companies")
	companies.Use(cfg.AuthMiddleware.RequireAuth())
	{
		companies.POST("", cfg.CompanyHandler.CreateCompany)
		companies.GET("", cfg.CompanyHandler.ListCompanies)
		companies.GET("/:id", cfg.CompanyHandler.GetCompany)
		companies.PATCH("/:id", cfg.CompanyHandler.UpdateCompany)

		companies.PUT("/:id/intake", cfg.IntakeHandler.SaveIntake)
		companies.POST("/:id/intake/ingest", cfg.IntakeHandler.IngestIntake)

		companies.GET("/:id/reviews", cfg.MediaHandler.ListReviews)
		companies.GET("/:id/media", cfg.MediaHandler.ListMedia)
		companies.POST("/:id/media/:mediaId/tags", cfg.MediaHandler.TagMedia)

		companies.POST("/:id/publish", cfg.PublishHandler.PublishCompany)
	}

	sync := engine.Group("/sync")
	sync.Use(cfg.AuthMiddleware.RequireAuth())
	{
		sync.POST("", cfg.PublishHandler.SyncOrganization)
	}
}
