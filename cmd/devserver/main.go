package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mathangi54/travel-booking-client/internal/config"
	"github.com/mathangi54/travel-booking-client/internal/devserver"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting travel booking dev server")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Client.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.DevServer.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var store devserver.Store
	if cfg.DevServer.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		pg, err := devserver.NewPostgresStore(cfg.DevServer.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		logger.Info("Database connection established")
		store = pg
	} else {
		logger.Info("DATABASE_URL not set, using in-memory store")
		store = devserver.NewMemoryStore()
	}

	secret := cfg.DevServer.JWTSecret
	if secret == "" {
		if cfg.DevServer.Environment == "production" {
			logger.Fatal("JWT_SECRET is required in production")
		}
		secret = "dev-only-secret"
		logger.Warn("JWT_SECRET not set, using development default")
	}
	tokens := devserver.NewTokenService(secret, cfg.DevServer.TokenExpiry)

	server := devserver.New(store, tokens, logger, cfg.DevServer.BcryptCost)
	router := server.Router(cfg.DevServer.AllowedOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.DevServer.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.DevServer.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}
