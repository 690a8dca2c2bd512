// cmd/crypto-test-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	v1 "github.com/skiselkov/crypto-test/internal/api/rest/v1"
	"github.com/skiselkov/crypto-test/internal/app"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/infrastructure/persistence"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.LoadRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	katService kat.Service
	sessions   crypto.SessionFactory
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	runRepo, err := persistence.NewGormKATRunRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kat run repository: %w", err)
	}

	sessions := cryptography.NewSessionFactory()

	katService, err := app.NewKATService(sessions, runRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kat service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		katService: katService,
		sessions:   sessions,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.katService, deps.sessions)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
