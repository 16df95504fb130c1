package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	adaptermsg "github.com/Tourment0412/gestion-perfil-micro/internal/adapter/messaging"
	"github.com/Tourment0412/gestion-perfil-micro/internal/config"
	"github.com/Tourment0412/gestion-perfil-micro/internal/infrastructure/database"
	httpServer "github.com/Tourment0412/gestion-perfil-micro/internal/infrastructure/http"
	"github.com/Tourment0412/gestion-perfil-micro/internal/infrastructure/messaging"
	"github.com/Tourment0412/gestion-perfil-micro/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, zapLogger)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the lifecycle event consumer
	listener := adaptermsg.NewPerfilEventListener(zapLogger)
	consumer, err := messaging.NewStreamConsumer(&cfg.Redis, zapLogger, listener.HandleEvent)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			zapLogger.Error("Failed to close redis connection", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	httpSrv := httpServer.NewServer(cfg, zapLogger, repos)

	// Start servers
	go func() {
		if err := consumer.Start(ctx); err != nil {
			zapLogger.Fatal("Failed to start stream consumer", zap.Error(err))
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down...")
	cancel()

	if err := httpSrv.Shutdown(context.Background()); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Service shut down successfully")
}
