package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/config"
	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/server"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger.InitLogger(cfg.Stage)
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Stage != constants.ProdEnvironment {
		debugCfg := *cfg
		debugCfg.JWTSecret = "<redacted>"
		debugCfg.TraficomAPIKey = "<redacted>"
		debugCfg.DVVAPIKey = "<redacted>"
		debugCfg.TalpaAPIKey = "<redacted>"
		debugCfg.ResendAPIKey = "<redacted>"
		logger.Debug("loaded configuration", zap.String("dump", spew.Sdump(debugCfg)))
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("Database migrations applied")
	}

	if cfg.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	server.InitializeHandlers(cfg)
	server.InitializeRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
