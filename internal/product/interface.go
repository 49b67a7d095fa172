package product

import (
	"context"

	"product-catalog-api/internal/product/query"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Catalog query
	List(ctx context.Context, opt query.Options) (ListItemsOutput, error)

	// Item CRUD
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Detail(ctx context.Context, id int64) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id int64) error

	// Import inserts items in order and returns how many were created.
	// Items whose SKU already exists are skipped.
	Import(ctx context.Context, inputs []CreateItemInput) (int, error)
}
