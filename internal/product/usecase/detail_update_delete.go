package usecase

import (
	"context"
	"errors"

	"product-catalog-api/internal/product"
	repo "product-catalog-api/internal/product/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (product.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return product.DetailItemOutput{}, err
	}
	if item.ID == 0 {
		return product.DetailItemOutput{}, product.ErrItemNotFound
	}
	return product.DetailItemOutput{Item: item}, nil
}

// Update modifies an existing Item. Returns ErrItemNotFound when not found
// and ErrDuplicateSKU when the new SKU belongs to another item.
func (uc *implUseCase) Update(ctx context.Context, input product.UpdateItemInput) (product.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return product.UpdateItemOutput{}, err
	}
	if existing.ID == 0 {
		return product.UpdateItemOutput{}, product.ErrItemNotFound
	}

	if input.SKU != "" && input.SKU != existing.SKU {
		clash, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{SKU: input.SKU})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneItem sku: %v", err)
			return product.UpdateItemOutput{}, err
		}
		if clash.ID != 0 {
			return product.UpdateItemOutput{}, product.ErrDuplicateSKU
		}
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        coalesce(input.Name, existing.Name),
		Description: coalesce(input.Description, existing.Description),
		SKU:         coalesce(input.SKU, existing.SKU),
		Price:       deref(input.Price, existing.Price),
		IsAvailable: deref(input.IsAvailable, existing.IsAvailable),
	})
	if errors.Is(err, repo.ErrDuplicateSKU) {
		return product.UpdateItemOutput{}, product.ErrDuplicateSKU
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return product.UpdateItemOutput{}, err
	}
	if item.ID == 0 {
		return product.UpdateItemOutput{}, product.ErrItemNotFound
	}
	uc.invalidate()

	return product.UpdateItemOutput{Item: item}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == 0 {
		return product.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	uc.invalidate()
	return nil
}
