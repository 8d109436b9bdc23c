package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"housing-price-service/internal/adapters/primary/http/handlers"
	"housing-price-service/internal/adapters/primary/http/middleware"
	"housing-price-service/internal/adapters/secondary/artifact"
	"housing-price-service/internal/adapters/secondary/memory"
	"housing-price-service/internal/adapters/secondary/prometheus"
	"housing-price-service/internal/config"
	"housing-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// The model is a startup precondition: no listener until it is loaded.
	registry := services.NewModelRegistry(artifact.NewFileLoader())
	if err := registry.Load(cfg.Model.ArtifactPath, cfg.Model.SchemaPath); err != nil {
		log.Fatalf("load model: %v", err)
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters
	historyRepo := memory.NewHistoryRepository()
	userRepo := memory.NewUserRepository()
	metrics := prometheus.NewRegistry()

	// Core Services
	predictSvc := services.NewPredictionService(registry, services.NewFeatureAdapter(), historyRepo, metrics)
	historySvc := services.NewHistoryService(historyRepo)
	sessionSvc := services.NewSessionService(userRepo, services.PlaceholderTokenIssuer{})

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(registry, predictSvc, historySvc, sessionSvc, metrics.Handler())

	// Setup router
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Metrics(metrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		gin.Recovery(),
	)
	h.RegisterRoutes(&router.RouterGroup)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
