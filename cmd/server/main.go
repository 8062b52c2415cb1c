package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/config"
	"github.com/Dirk1989/Ideal/internal/handler"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/server"
	"github.com/Dirk1989/Ideal/internal/service"
	"github.com/Dirk1989/Ideal/internal/session"
	"github.com/Dirk1989/Ideal/internal/upload"
	"github.com/Dirk1989/Ideal/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel, cfg.IsDevelopment())

	ctx := context.Background()
	res := &resources{checks: map[string]handler.Checker{}}

	// Open storage
	backend, err := openBackend(ctx, cfg, res)
	if err != nil {
		logger.Fatal("Failed to open store",
			slog.String("backend", cfg.StoreBackend),
			slog.String("error", err.Error()))
	}
	res.onClose(func() {
		if err := backend.Close(); err != nil {
			logger.Error("Failed to close store", slog.String("error", err.Error()))
		}
	})

	repos, err := repository.OpenAll(ctx, backend)
	if err != nil {
		logger.Fatal("Failed to load collections",
			slog.String("error", err.Error()))
	}

	sessions, err := openSessions(ctx, cfg, res)
	if err != nil {
		logger.Fatal("Failed to open session store",
			slog.String("backend", cfg.SessionBackend),
			slog.String("error", err.Error()))
	}

	uploads, err := upload.New(cfg.UploadDir,
		upload.Limits{MaxFiles: upload.DefaultMaxFiles, MaxFileSize: cfg.UploadMaxFileSize},
		upload.WithThumbnails(cfg.UploadThumbnails),
	)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory",
			slog.String("error", err.Error()))
	}

	limiters, closeLimiters, err := server.NewLimiters(cfg)
	if err != nil {
		logger.Fatal("Failed to create rate limiters",
			slog.String("error", err.Error()))
	}
	res.onClose(closeLimiters)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	auth := session.NewAuthenticator(sessions, session.Config{
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		TTL:          cfg.AdminTokenTTL,
	})
	vehicleService := service.NewVehicleService(repos.Vehicles, uploads, v)
	blogService := service.NewBlogService(repos.BlogPosts, uploads, v)
	dealerService := service.NewDealerService(repos.Dealers, repos.Vehicles, uploads, v)
	contactService := service.NewContactService(v)
	statsService := service.NewStatsService(repos.Vehicles, repos.BlogPosts, repos.Dealers)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.Options{
		Config: cfg,
		Handlers: server.Handlers{
			Vehicles: handler.NewVehicleHandler(vehicleService),
			Blog:     handler.NewBlogHandler(blogService),
			Dealers:  handler.NewDealerHandler(dealerService),
			Contact:  handler.NewContactHandler(contactService),
			Auth:     handler.NewAuthHandler(auth),
			Stats:    handler.NewStatsHandler(statsService),
			Health:   handler.NewHealthHandler(version, res.checks),
		},
		Limiters: limiters,
		Tokens:   auth,
	})

	srv := server.NewHTTPServer(cfg, router)

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("environment", cfg.Environment),
			slog.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// In-flight writes have finished; release storage and sessions.
	res.close()

	logger.Info("Server exited")
}
