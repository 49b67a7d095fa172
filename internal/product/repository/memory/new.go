package memory

import (
	"context"
	"sync"
	"time"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/product/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	items  map[int64]model.Item
	nextID int64
	now    func() time.Time
}

// New creates an in-process Repository. Data lives only as long as the process.
func New() repository.Repository {
	return &implRepository{
		items:  make(map[int64]model.Item),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *implRepository) Ping(ctx context.Context) error { return ctx.Err() }

func (r *implRepository) Close() error { return nil }
