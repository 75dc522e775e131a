package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/auth"
	"github.com/citypermits/permits-api/internal/client/dvv"
	"github.com/citypermits/permits-api/internal/client/talpa"
	"github.com/citypermits/permits-api/internal/client/traficom"
	"github.com/citypermits/permits-api/internal/config"
	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/handlers"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/services"
)

// Handler definitions
var (
	healthHandler   *handlers.HealthHandler
	productHandler  *handlers.ProductHandler
	customerHandler *handlers.CustomerHandler
	permitHandler   *handlers.PermitHandler
	orderHandler    *handlers.OrderHandler

	// Database
	dbQueries *db.Queries

	jwtSecret string
)

// InitializeHandlers wires the database, the registry clients and the
// service layer into the HTTP handlers.
func InitializeHandlers(cfg *config.Config) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(connPool)
	jwtSecret = cfg.JWTSecret

	traficomClient := traficom.NewClient(cfg.TraficomAPIURL, cfg.TraficomAPIKey)
	dvvClient := dvv.NewClient(cfg.DVVAPIURL, cfg.DVVAPIKey)
	talpaClient := talpa.NewClient(cfg.TalpaAPIURL, cfg.TalpaAPIKey, cfg.TalpaNamespace)

	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, "City Parking Permits")
	eventService := services.NewEventService(dbQueries)
	pricingService := services.NewPricingService(dbQueries, dbQueries, services.DefaultSecondaryVehicleIncreaseRate)
	productService := services.NewProductService(dbQueries)
	customerService := services.NewCustomerService(dbQueries, traficomClient, dvvClient)
	permitService := services.NewPermitService(dbQueries, pricingService, eventService, emailService)
	orderService := services.NewOrderService(dbQueries, pricingService, talpaClient, eventService, emailService)

	healthHandler = handlers.NewHealthHandler()
	productHandler = handlers.NewProductHandler(productService)
	customerHandler = handlers.NewCustomerHandler(customerService)
	permitHandler = handlers.NewPermitHandler(permitService, eventService)
	orderHandler = handlers.NewOrderHandler(orderService)
}

// InitializeRoutes registers all HTTP routes on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/zones", productHandler.ListZones)
		v1.GET("/zones/:zone_id/products", productHandler.ListProducts)
		v1.GET("/zones/:zone_id/products/:product_id", productHandler.GetProduct)

		// The payment platform calls the webhook with its own key, not
		// a customer token
		v1.POST("/orders/webhook", orderHandler.PaymentWebhook)

		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(auth.EnsureValidToken(jwtSecret))
		{
			customers := protected.Group("/customers")
			{
				customers.POST("", customerHandler.ResolveCustomer)
				customers.GET("/:customer_id", customerHandler.GetCustomer)
				customers.GET("/:customer_id/permits", permitHandler.ListCustomerPermits)
			}

			protected.POST("/vehicles/fetch", customerHandler.FetchVehicle)
			protected.GET("/vehicles/:registration_number", customerHandler.GetVehicle)

			permits := protected.Group("/permits")
			{
				permits.POST("", permitHandler.CreatePermit)
				permits.GET("/:permit_id", permitHandler.GetPermit)
				permits.POST("/:permit_id/end", permitHandler.EndPermit)
				permits.POST("/:permit_id/extension-price-list", permitHandler.GetExtensionPriceList)
				permits.POST("/:permit_id/extend", permitHandler.ExtendPermit)
				permits.POST("/:permit_id/renew", permitHandler.RenewPermit)
				permits.POST("/:permit_id/price-changes", permitHandler.GetPriceChangeList)
				permits.GET("/:permit_id/refund-preview", orderHandler.GetRefundPreview)
				permits.GET("/:permit_id/refund-total", orderHandler.GetTotalRefundAmount)
				permits.POST("/:permit_id/refunds", orderHandler.CreateRefunds)
			}

			protected.POST("/permit-prices", permitHandler.GetPermitPrices)
			protected.POST("/orders", orderHandler.CreateOrder)
			protected.GET("/orders/:order_id", orderHandler.GetOrder)

			// Refund settlement for the refunds back office
			refunds := protected.Group("/refunds")
			refunds.Use(auth.RequireRoles(constants.AdminRole, constants.RefundsRole))
			{
				refunds.GET("", orderHandler.ListRefunds)
				refunds.POST("/:refund_id/settle", orderHandler.SettleRefund)
			}

			// Admin-only routes
			admin := protected.Group("/admin")
			admin.Use(auth.RequireRoles(constants.AdminRole, constants.PreparatorRole))
			{
				admin.POST("/zones", productHandler.CreateZone)
				admin.POST("/zones/:zone_id/products", productHandler.CreateProduct)
				admin.PUT("/zones/:zone_id/products/:product_id", productHandler.UpdateProduct)
				admin.GET("/permits/:permit_id/events", permitHandler.ListPermitEvents)
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
