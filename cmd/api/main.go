package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"product-catalog-api/config"
	"product-catalog-api/config/storage"
	_ "product-catalog-api/docs" // Swagger docs
	"product-catalog-api/internal/httpserver"
	"product-catalog-api/internal/middleware"
	"product-catalog-api/internal/product/seed"
	"product-catalog-api/internal/product/usecase"
	"product-catalog-api/pkg/log"
)

// @title       Product Catalog API
// @description Catalog service with filtering, search, dynamic sorting and pagination over products.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Product Catalog API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	repo, err := storage.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open catalog store: ", err)
		return
	}
	defer repo.Close()

	// 4. Product UseCase
	productUC := usecase.New(repo, logger, usecase.CacheConfig{
		Size: cfg.Cache.Size,
		TTL:  cfg.Cache.TTL,
	})

	// 5. Seed an empty catalog
	if cfg.Seed.File != "" {
		count, err := repo.CountItems(ctx)
		if err != nil {
			logger.Error(ctx, "Failed to count items: ", err)
			return
		}
		if count == 0 {
			created, err := seed.Apply(ctx, productUC, cfg.Seed.File)
			if err != nil {
				logger.Warnf(ctx, "Seeding from %s failed: %v", cfg.Seed.File, err)
			} else {
				logger.Infof(ctx, "Seeded %d item(s) from %s", created, cfg.Seed.File)
			}
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Environment:    cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		},
		ProductUseCase: productUC,
		ReadyCheck:     repo.Ping,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
