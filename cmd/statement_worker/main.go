package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/repository/postgres"
	s3repo "github.com/kingrain94/rent-dashboard/internal/repository/s3"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/service/queue"
	"github.com/kingrain94/rent-dashboard/internal/worker"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

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

	appLogger.Info("Database connections established for statement worker")

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	statementService := service.NewStatementService(
		postgres.NewPostgresRepository(dbConnections),
		s3repo.NewStatementStore(s3Client, s3Config),
		sqsService,
		s3Config.StatementKey,
		cfg.Location,
		appLogger,
	)

	statementWorker := worker.NewSQSWorker(
		"statement",
		sqsService,
		sqsConfig.StatementQueueURL,
		worker.NewStatementHandler(statementService),
		appLogger,
		2,
		10*time.Second, // Poll every 10 seconds
	)

	statementWorker.Start()
	appLogger.Info("Statement worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	statementWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
