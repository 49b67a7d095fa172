package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	SKU         string
	Price       float64
	IsAvailable bool
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-zero fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID  int64
	SKU string
}

// UpdateItemOptions holds the full new state of an existing Item.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	SKU         string
	Price       float64
	IsAvailable bool
}
