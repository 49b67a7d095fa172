package http

import (
	"errors"
	"net/http"

	"product-catalog-api/internal/product"
	pkgErrors "product-catalog-api/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is reported as an internal server error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, product.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, product.ErrDuplicateSKU):
		return pkgErrors.NewHTTPError(http.StatusConflict, "item sku already exists")
	case errors.Is(err, product.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid payload")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
