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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/notes-api/docs"
	"github.com/kingrain94/notes-api/internal/api"
	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/middleware"
	"github.com/kingrain94/notes-api/internal/repository/postgres"
	"github.com/kingrain94/notes-api/internal/service"
	"github.com/kingrain94/notes-api/internal/service/queue"
	"github.com/kingrain94/notes-api/pkg/cryptox"
	"github.com/kingrain94/notes-api/pkg/logger"
	"github.com/kingrain94/notes-api/pkg/token"
)

// @title           Notes API
// @version         1.0
// @description     Multi-tenant notes service with plan-based quotas.

// @host      localhost:10000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger(cfg.AppEnv, cfg.LogLevel)
	defer appLogger.Sync()

	ctx := context.Background()

	dbConnections, err := config.NewDatabaseConnections(cfg.AppEnv)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if cfg.MigrateOnStart {
		if err := postgres.ApplyMigrations(dbConnections.Writer); err != nil {
			appLogger.Fatal("Failed to apply migrations", err)
		}
		appLogger.Info("Database schema is up to date")
	}

	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	tokens, err := token.NewManager(cfg.JWTSecretKey, cfg.JWTExpiration(), cfg.JWTIssuer)
	if err != nil {
		appLogger.Fatal("Failed to create token manager", err)
	}
	hasher := cryptox.NewBcryptHasher(cfg.BcryptCost)

	repo := postgres.NewPostgresRepository(dbConnections)

	sessions := service.NewSessionService(repo, tokens, appLogger)
	quota := service.NewQuotaService(repo, appLogger)
	invitations := service.NewInvitationService(repo, sessions, hasher, service.InvitationConfig{
		TTL:         cfg.InvitationTTL,
		FrontendURL: cfg.FrontendURL,
	}, appLogger)

	services := api.Services{
		Tenants:     service.NewTenantService(repo, sessions, hasher, appLogger),
		Accounts:    service.NewAccountService(repo, sessions, hasher, appLogger),
		Invitations: invitations,
		Notes:       service.NewNoteService(repo, quota, appLogger),
		Admin:       service.NewAdminService(repo, invitations, sqsService, appLogger),
		Plans:       quota,
	}

	authMiddleware := middleware.NewAuthMiddleware(sessions, appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, middleware.RateLimitConfig{
		KeyPrefix:   redisConfig.KeyPrefix,
		TenantLimit: cfg.DefaultRateLimit,
		GlobalLimit: cfg.GlobalRateLimit,
	}, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	server := api.NewServer(
		api.NewBaseHandler(appLogger, cfg.IsProduction()),
		services,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(appLogger), gin.Recovery())

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.Schemes = []string{"http"}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", api.Health)

	server.SetupRoutes(router.Group(""))
	router.NoRoute(api.NotFound)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
}
