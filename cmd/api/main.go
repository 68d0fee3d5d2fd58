package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/rent-dashboard/docs"
	"github.com/kingrain94/rent-dashboard/internal/api"
	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/middleware"
	"github.com/kingrain94/rent-dashboard/internal/repository/composite"
	"github.com/kingrain94/rent-dashboard/internal/repository/postgres"
	s3repo "github.com/kingrain94/rent-dashboard/internal/repository/s3"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/service/pubsub"
	"github.com/kingrain94/rent-dashboard/internal/service/queue"
	"github.com/kingrain94/rent-dashboard/internal/view"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

// @title           Rent Dashboard API
// @version         1.0
// @description     Landlord rent dashboard: tenants, rent and utility totals, payments and statements.

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

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := postgres.Migrate(dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	statementStore := s3repo.NewStatementStore(s3Client, s3Config)

	repo := composite.NewCompositeRepository(dbConnections, redisClient, osClient, osConfig)

	// Initialize services
	sessionService := service.NewSessionService(repo, cfg, appLogger)
	tenantService := service.NewTenantService(repo, sqsService, appLogger)
	tenantService.SetDashboardNotifier(redisPubSub)
	dashboardService := service.NewDashboardService(repo, cfg.Location, appLogger)
	statementService := service.NewStatementService(repo, statementStore, sqsService, s3Config.StatementKey, cfg.Location, appLogger)

	renderer, err := view.NewRenderer()
	if err != nil {
		appLogger.Fatal("Failed to load templates", err)
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionService, cfg, appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		api.Services{
			Auth:       sessionService,
			Tenants:    tenantService,
			Dashboard:  dashboardService,
			Statements: statementService,
		},
		api.NewWebSocketHandler(dashboardService, renderer, redisPubSub, cfg.RefreshInterval, appLogger),
		renderer.Template(),
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg.GlobalRateLimit,
		appLogger,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Swagger documentation endpoint
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup page and API routes
	server.SetupRoutes(router)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Close live dashboards before the HTTP server
	server.StopWebSocketHub()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
