package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/saas-platform-api/docs"
	"github.com/kingrain94/saas-platform-api/internal/api"
	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/internal/config"
	"github.com/kingrain94/saas-platform-api/internal/middleware"
	"github.com/kingrain94/saas-platform-api/internal/repository/postgres"
	"github.com/kingrain94/saas-platform-api/internal/service"
	"github.com/kingrain94/saas-platform-api/internal/service/pubsub"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

// @title           SaaS Platform API
// @version         1.0
// @description     Multi-tenant management of tenants, customers, users and role assignments.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	defer func() { _ = appLogger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConnections, err := config.NewDatabaseConnections(ctx, cfg.AppEnv, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	store := postgres.NewStore(dbConnections, appLogger)
	if cfg.AutoMigrate {
		if err := store.AutoMigrate(ctx); err != nil {
			appLogger.Fatal("Failed to migrate database schema", err)
		}
		appLogger.Info("Database schema migrated")
	}

	// Initialize Redis
	redisClient, err := config.DefaultRedisConfig().GetClient(ctx, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Redis pub/sub carries the change feed between instances
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize services
	tenantService := service.NewTenantService(store, appLogger)
	customerService := service.NewCustomerService(store, appLogger)
	userService := service.NewUserService(store, appLogger)
	userRoleService := service.NewUserRoleService(store, appLogger)

	tenantService.SetChangePublisher(redisPubSub)
	customerService.SetChangePublisher(redisPubSub)
	userService.SetChangePublisher(redisPubSub)
	userRoleService.SetChangePublisher(redisPubSub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	base := api.NewBaseHandler(appLogger, dto.PagingLimits{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})
	server := api.NewServer(
		base,
		api.Services{
			Tenants:   tenantService,
			Customers: customerService,
			Users:     userService,
			UserRoles: userRoleService,
		},
		store,
		redisPubSub,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg.GlobalRateLimit,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSAllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "SaaS Platform API"
	docs.SwaggerInfo.Description = "Multi-tenant management of tenants, customers, users and role assignments"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	server.SetupHealth(router)

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	server.StopWebSocketHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
}

// allowsAnyOrigin reports whether origins is the wildcard, which browsers
// refuse to combine with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
