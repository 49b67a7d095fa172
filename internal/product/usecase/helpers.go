package usecase

import (
	"fmt"

	"product-catalog-api/internal/product/query"
)

// coalesce returns newVal when it is set, otherwise the existing value.
func coalesce[T comparable](newVal, existing T) T {
	var zero T
	if newVal != zero {
		return newVal
	}
	return existing
}

// deref returns *p, or fallback when p is nil.
func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func (uc *implUseCase) cacheKey(version uint64, opt query.Options) string {
	return fmt.Sprintf("v%d|%s", version, opt.Key())
}

// invalidate makes every cached page unreachable. Called after each mutation.
func (uc *implUseCase) invalidate() {
	uc.version.Add(1)
	if uc.pages != nil {
		uc.pages.Purge()
	}
}
