package routes

import (
	"net/http"
	"time"

	session_cache "github.com/Modeva-Ecommerce/marketplace-storefront/cache"
	"github.com/Modeva-Ecommerce/marketplace-storefront/config"
	_ "github.com/Modeva-Ecommerce/marketplace-storefront/docs"
	"github.com/Modeva-Ecommerce/marketplace-storefront/middleware"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/marketplace-storefront/routes/seller_routes"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer needs. All of it is built once in
// main (or a test) and shared by every request.
type Dependencies struct {
	Config    *config.Config
	Catalog   []models.Product
	Sessions  *session_cache.Store
	Tokens    *services.SessionTokenService
	Activity  *services.ActivityLogService
	RateStore middleware.RateStore
	Log       *zap.Logger
}

func NewRouter(d Dependencies) *gin.Engine {
	cfg := d.Config

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	router.Use(middleware.Recovery(d.Log), middleware.RequestLogger(d.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", gin.H{"sessions": d.Sessions.Len()}))
	})

	// Register API routes. The limiter runs first so throttled requests never
	// allocate a session.
	api := router.Group("/api/v1")
	api.Use(
		middleware.RateLimiter(d.RateStore, cfg.RateLimit.Requests, cfg.RateLimit.Window, d.Log),
		middleware.SessionMiddleware(d.Sessions, d.Tokens, middleware.SessionOptions{
			TTL:          cfg.Session.TTL,
			CookieSecure: cfg.Session.CookieSecure,
		}, d.Log),
		middleware.ActivityLoggingMiddleware(d.Activity),
	)

	ecommerce_routes.SetupStorefrontRoutes(api, d.Catalog, d.Log)
	ecommerce_routes.SetupAuthRoutes(api, d.Log)

	images := services.NewImageIntake(cfg.Upload.MaxImages, cfg.Upload.MaxImageBytes, d.Log)
	seller_routes.SetupListingRoutes(api, images, cfg.Upload.MaxFormBytes, d.Log)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
