package http

import (
	"product-catalog-api/internal/product"
	"product-catalog-api/pkg/log"
)

type handler struct {
	l  log.Logger
	uc product.UseCase
}

// New creates a new HTTP handler for the product domain.
func New(l log.Logger, uc product.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
