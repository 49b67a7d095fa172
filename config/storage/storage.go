package storage

import (
	"context"

	"product-catalog-api/config"
	"product-catalog-api/internal/product/repository"
	"product-catalog-api/internal/product/repository/memory"
	"product-catalog-api/internal/product/repository/sqlite"
	"product-catalog-api/pkg/log"
)

// Open returns the catalog store selected by cfg. SQLite stores are migrated
// before they are returned.
func Open(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (repository.Repository, error) {
	if cfg.InMemory {
		l.Info(ctx, "Using in-memory catalog store")
		return memory.New(), nil
	}

	l.Infof(ctx, "Using SQLite catalog store at %s", cfg.Path)
	return sqlite.Open(ctx, cfg.Path, l)
}
