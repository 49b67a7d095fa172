package usecase

import (
	"context"

	"product-catalog-api/internal/product"
	"product-catalog-api/internal/product/query"
)

var _ product.UseCase = (*implUseCase)(nil)

// List runs the query pipeline over a fresh snapshot of the catalog.
func (uc *implUseCase) List(ctx context.Context, opt query.Options) (product.ListItemsOutput, error) {
	version := uc.version.Load()
	key := uc.cacheKey(version, opt)

	if uc.pages != nil {
		if page, ok := uc.pages.Get(key); ok {
			return product.ListItemsOutput{Page: page}, nil
		}
	}

	items, err := uc.repo.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Snapshot: %v", err)
		return product.ListItemsOutput{}, err
	}

	page := query.Execute(items, opt)

	// Skip caching when a mutation happened while the snapshot was taken.
	if uc.pages != nil && uc.version.Load() == version {
		uc.pages.Add(key, page)
	}

	return product.ListItemsOutput{Page: page}, nil
}
