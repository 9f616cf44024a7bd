package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingusecases "github.com/beaconhq/beacon/internal/application/billing/usecases"
	companyusecases "github.com/beaconhq/beacon/internal/application/company/usecases"
	intakeusecases "github.com/beaconhq/beacon/internal/application/intake/usecases"
	mediausecases "github.com/beaconhq/beacon/internal/application/media/usecases"
	publishusecases "github.com/beaconhq/beacon/internal/application/publish/usecases"
	reviewusecases "github.com/beaconhq/beacon/internal/application/review/usecases"
	"github.com/beaconhq/beacon/internal/infrastructure/assets"
	"github.com/beaconhq/beacon/internal/infrastructure/auth"
	"github.com/beaconhq/beacon/internal/infrastructure/billing"
	"github.com/beaconhq/beacon/internal/infrastructure/cache"
	"github.com/beaconhq/beacon/internal/infrastructure/config"
	"github.com/beaconhq/beacon/internal/infrastructure/repository"
	"github.com/beaconhq/beacon/internal/infrastructure/storage"
	"github.com/beaconhq/beacon/internal/infrastructure/webflow"
	"github.com/beaconhq/beacon/internal/interfaces/http/handlers"
	"github.com/beaconhq/beacon/internal/interfaces/http/middleware"
	"github.com/beaconhq/beacon/internal/interfaces/http/routes"
	"github.com/beaconhq/beacon/internal/shared/db"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/services/richtext"
)

// NewRouter wires repositories, services, use cases, and handlers into a
// configured Gin engine.
func NewRouter(cfg *config.Config, gdb *gorm.DB, redisClient *redis.Client, log logger.Interface) (*gin.Engine, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Repositories
	companyRepo := repository.NewCompanyRepository(gdb)
	intakeRepo := repository.NewIntakeRepository(gdb)
	reviewRepo := repository.NewReviewRepository(gdb)
	mediaRepo := repository.NewMediaItemRepository(gdb)
	txManager := db.NewTransactionManager(gdb)

	// Infrastructure services
	objectStore, err := storage.NewMinioStorage(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	relocator := assets.NewRelocator(&cfg.Assets, objectStore, log.Named("assets"))
	cmsClient := webflow.NewClient(&cfg.Webflow, log.Named("webflow"))
	stripeService := billing.NewStripeService(&cfg.Stripe, log.Named("stripe"))
	deduper := cache.NewWebhookEventDeduper(redisClient)
	renderer := richtext.NewRenderer()
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)

	// Use cases
	createCompanyUC := companyusecases.NewCreateCompanyUseCase(companyRepo, log)
	getCompanyUC := companyusecases.NewGetCompanyUseCase(companyRepo, log)
	listCompaniesUC := companyusecases.NewListCompaniesUseCase(companyRepo, log)
	updateCompanyUC := companyusecases.NewUpdateCompanyUseCase(companyRepo, log)

	saveIntakeUC := intakeusecases.NewSaveIntakeUseCase(companyRepo, intakeRepo, log)
	ingestIntakeUC := intakeusecases.NewIngestIntakeUseCase(companyRepo, intakeRepo, reviewRepo, mediaRepo, relocator, txManager, log)

	listMediaUC := mediausecases.NewListMediaUseCase(companyRepo, mediaRepo, log)
	tagMediaUC := mediausecases.NewTagMediaUseCase(companyRepo, mediaRepo, log)
	listReviewsUC := reviewusecases.NewListReviewsUseCase(companyRepo, reviewRepo, log)

	publishCompanyUC := publishusecases.NewPublishCompanyUseCase(companyRepo, reviewRepo, mediaRepo, cmsClient, renderer, log)
	syncOrgUC := publishusecases.NewSyncOrganizationUseCase(companyRepo, publishCompanyUC, log)

	createCheckoutUC := billingusecases.NewCreateCheckoutUseCase(stripeService, log)
	handleWebhookUC := billingusecases.NewHandleWebhookUseCase(stripeService, deduper, companyRepo, log)

	// Handlers
	companyHandler := handlers.NewCompanyHandler(createCompanyUC, getCompanyUC, listCompaniesUC, updateCompanyUC, log)
	intakeHandler := handlers.NewIntakeHandler(saveIntakeUC, ingestIntakeUC, log)
	mediaHandler := handlers.NewMediaHandler(listMediaUC, tagMediaUC, listReviewsUC, log)
	publishHandler := handlers.NewPublishHandler(publishCompanyUC, syncOrgUC, log)
	billingHandler := handlers.NewBillingHandler(createCheckoutUC, handleWebhookUC, log)
	healthHandler := handlers.NewHealthHandler(gdb, redisClient)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine.GET("/health", healthHandler.Health)

	routes.SetupCompanyRoutes(engine, &routes.CompanyRouteConfig{
		CompanyHandler: companyHandler,
		IntakeHandler:  intakeHandler,
		MediaHandler:   mediaHandler,
		PublishHandler: publishHandler,
		AuthMiddleware: authMiddleware,
	})

	routes.SetupBillingRoutes(engine, &routes.BillingRouteConfig{
		BillingHandler: billingHandler,
		AuthMiddleware: authMiddleware,
	})

	return engine, nil
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
