package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/repository/postgres"
	"github.com/kingrain94/notes-api/internal/service/queue"
	"github.com/kingrain94/notes-api/internal/worker"
	"github.com/kingrain94/notes-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appEnv := os.Getenv("APP_ENV")
	appLogger := logger.NewLogger(appEnv, os.Getenv("LOG_LEVEL"))
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConnections, err := config.NewDatabaseConnections(appEnv)
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	exportWorker := worker.NewExportWorker(
		sqsService,
		pgRepo,
		appLogger,
		2,             // worker count
		5*time.Second, // poll interval
		s3Client,
		s3Config,
	)

	exportWorker.Start(ctx)

	<-ctx.Done()
	appLogger.Info("Shutting down export worker...")

	exportWorker.Stop()
	appLogger.Info("Export worker stopped")
}
