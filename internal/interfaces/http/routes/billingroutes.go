package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beaconhq/beacon/internal/interfaces/http/handlers"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
)

// BillingRouteConfig holds dependencies for billing routes.
type BillingRouteConfig struct {
	BillingHandler *handlers.BillingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBillingRoutes configures billing routes. The webhook endpoint is
// unauthenticated; its payload is trusted through signature verification
// instead of a bearer token.
func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	billing := engine.Group("/billing")
	{
		billing.POST("/webhook", cfg.BillingHandler.HandleWebhook)

		protected := billing.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("/checkout", cfg.BillingHandler.CreateCheckout)
		}
	}
}
