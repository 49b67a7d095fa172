package product

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrDuplicateSKU   = errors.New("item sku already exists")
	ErrInvalidPayload = errors.New("invalid payload")
)
