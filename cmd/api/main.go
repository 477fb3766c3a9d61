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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/config"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/middleware"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service/pubsub"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	db, err := config.NewDatabase()
	if err != nil {
		appLogger.Fatal("Failed to open database", err)
	}
	defer config.CloseDatabase(db)

	st, err := store.New(db, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize store", err)
	}

	// Seed demo tenants, users and permissions on first boot.
	if err := st.Seed(context.Background()); err != nil {
		appLogger.Fatal("Failed to seed store", err)
	}

	broker := pubsub.NewBroker(appLogger)

	authMiddleware := middleware.NewAuthMiddleware(cfg)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	auditLogService := service.NewAuditLogService(st, broker, appLogger)
	server := api.NewServer(
		service.NewAuthService(st, authMiddleware, cfg.JWTExpirationHours),
		service.NewTenantService(st),
		service.NewDeviceService(st, auditLogService),
		auditLogService,
		service.NewDashboardService(st),
		service.NewBillingService(st),
		service.NewIntegrationService(st),
		authMiddleware,
		validationMiddleware,
		appLogger,
		broker,
	)

	server.StartWebSocketHub()

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.StopWebSocketHub()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
