package repository

import (
	"context"

	"product-catalog-api/internal/model"
)

// Repository is the composed interface for the product data store.
type Repository interface {
	ItemRepository
	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error
	Close() error
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	// Snapshot returns every item ordered by id, read consistently.
	Snapshot(ctx context.Context) ([]model.Item, error)
	CountItems(ctx context.Context) (int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
