package usecase

import (
	"context"
	"errors"

	"product-catalog-api/internal/product"
	repo "product-catalog-api/internal/product/repository"
)

// Create creates a new Item after checking for SKU uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input product.CreateItemInput) (product.CreateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{SKU: input.SKU})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return product.CreateItemOutput{}, err
	}
	if existing.ID != 0 {
		return product.CreateItemOutput{}, product.ErrDuplicateSKU
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		SKU:         input.SKU,
		Price:       input.Price,
		IsAvailable: input.IsAvailable,
	})
	if errors.Is(err, repo.ErrDuplicateSKU) {
		return product.CreateItemOutput{}, product.ErrDuplicateSKU
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return product.CreateItemOutput{}, err
	}
	uc.invalidate()

	return product.CreateItemOutput{Item: item}, nil
}

// Import creates every input whose SKU is not taken yet, in order.
func (uc *implUseCase) Import(ctx context.Context, inputs []product.CreateItemInput) (int, error) {
	created := 0
	for _, input := range inputs {
		if _, err := uc.Create(ctx, input); err != nil {
			if errors.Is(err, product.ErrDuplicateSKU) {
				uc.l.Debugf(ctx, "uc.Import skipping existing sku %s", input.SKU)
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
