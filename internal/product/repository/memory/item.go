package memory

import (
	"context"
	"maps"
	"slices"

	"product-catalog-api/internal/model"
	repo "product-catalog-api/internal/product/repository"
)

// CreateItem returns ErrDuplicateSKU when the SKU is already stored.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(opt.SKU, 0) {
		return model.Item{}, repo.ErrDuplicateSKU
	}

	now := r.now().UTC()
	item := model.Item{
		ID:          r.nextID,
		Name:        opt.Name,
		Description: opt.Description,
		SKU:         opt.SKU,
		Price:       opt.Price,
		IsAvailable: opt.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items[item.ID] = item
	r.nextID++

	return item, nil
}

// GetOneItem returns a zero-value Item (ID == 0) when nothing matches.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opt.ID != 0 {
		item, ok := r.items[opt.ID]
		if !ok || (opt.SKU != "" && item.SKU != opt.SKU) {
			return model.Item{}, nil
		}
		return item, nil
	}

	for _, id := range r.sortedIDs() {
		item := r.items[id]
		if opt.SKU == "" || item.SKU == opt.SKU {
			return item, nil
		}
	}
	return model.Item{}, nil
}

func (r *implRepository) Snapshot(ctx context.Context) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.items))
	for _, id := range r.sortedIDs() {
		items = append(items, r.items[id])
	}
	return items, nil
}

func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// UpdateItem returns a zero-value Item when the id does not exist and
// ErrDuplicateSKU when another item holds the new SKU.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[opt.ID]
	if !ok {
		return model.Item{}, nil
	}
	if r.skuTaken(opt.SKU, opt.ID) {
		return model.Item{}, repo.ErrDuplicateSKU
	}

	item.Name = opt.Name
	item.Description = opt.Description
	item.SKU = opt.SKU
	item.Price = opt.Price
	item.IsAvailable = opt.IsAvailable
	item.UpdatedAt = r.now().UTC()
	r.items[item.ID] = item

	return item, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

// skuTaken reports whether an item other than except holds sku.
// Must be called with r.mu held.
func (r *implRepository) skuTaken(sku string, except int64) bool {
	for id, item := range r.items {
		if id != except && item.SKU == sku {
			return true
		}
	}
	return false
}

// sortedIDs must be called with r.mu held.
func (r *implRepository) sortedIDs() []int64 {
	return slices.Sorted(maps.Keys(r.items))
}
