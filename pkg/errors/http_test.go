package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "product-catalog-api/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "sku already exists"))

	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if httpErr.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", httpErr.StatusCode)
	}
	if httpErr.Error() != "sku already exists" {
		t.Errorf("unexpected message %q", httpErr.Error())
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be reported as HTTPError")
	}
}
