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

	"github.com/SscSPs/sky_take_out/internal/adapters/database/pgsql"
	"github.com/SscSPs/sky_take_out/internal/autofill"
	"github.com/SscSPs/sky_take_out/internal/core/services"
	"github.com/SscSPs/sky_take_out/internal/handlers"
	"github.com/SscSPs/sky_take_out/internal/middleware"
	"github.com/SscSPs/sky_take_out/internal/platform/config"
	"github.com/SscSPs/sky_take_out/internal/platform/oss"
	"github.com/SscSPs/sky_take_out/internal/platform/redis"
	"github.com/SscSPs/sky_take_out/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Sky Take-out Admin API
// @version 1.0
// @description Admin back office of the sky take-out service.

// @host localhost:8080
// @BasePath /admin

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	redisClient, err := redis.NewClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	interceptor := autofill.NewInterceptor(
		autofill.WithStrict(cfg.AutofillStrict),
		autofill.WithLogger(logger),
		autofill.WithMetrics(autofill.NewMetrics(registry)),
	)
	repos := pgsql.NewRepositoryProvider(dbPool, interceptor)

	var store services.ObjectStore
	if cfg.OSS.Enabled() {
		uploader, err := oss.NewUploader(oss.Config{
			Endpoint:        cfg.OSS.Endpoint,
			AccessKeyID:     cfg.OSS.AccessKeyID,
			AccessKeySecret: cfg.OSS.AccessKeySecret,
			BucketName:      cfg.OSS.BucketName,
			Region:          cfg.OSS.Region,
			UseSSL:          cfg.OSS.UseSSL,
		})
		if err != nil {
			return err
		}
		store = uploader
	}

	serviceContainer := services.NewServiceContainer(repos, redis.NewTemplate(redisClient), store)

	if cfg.AdminPassword != "" {
		if _, err := serviceContainer.Employee.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
	} else {
		logger.Warn("ADMIN_PASSWORD not set. Skipping admin bootstrap.")
	}

	uploadLimiter, err := middleware.NewRateLimiter(cfg.UploadRateLimit, redisClient, "sky_upload_limit")
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		UploadLimiter: uploadLimiter,
		Metrics:       registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	logger.Info("Server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
	return nil
}
