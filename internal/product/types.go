package product

import (
	"product-catalog-api/internal/model"
	"product-catalog-api/internal/product/query"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	SKU         string
	Price       float64
	IsAvailable bool
}

// UpdateItemInput is a partial update: empty strings and nil pointers keep
// the stored value.
type UpdateItemInput struct {
	ID          int64
	Name        string
	Description string
	SKU         string
	Price       *float64
	IsAvailable *bool
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	query.Page
}

type DetailItemOutput struct {
	Item model.Item
}

type UpdateItemOutput struct {
	Item model.Item
}
