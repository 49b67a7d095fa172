package usecase

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"product-catalog-api/internal/product/query"
	"product-catalog-api/internal/product/repository"
	"product-catalog-api/pkg/log"
)

// CacheConfig sizes the page cache. Size 0 disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// implUseCase is the private implementation of product.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	pages   *expirable.LRU[string, query.Page]
	version atomic.Uint64
}

// New creates a new product UseCase implementation.
func New(repo repository.Repository, l log.Logger, cache CacheConfig) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		l:    l,
	}
	if cache.Size > 0 {
		uc.pages = expirable.NewLRU[string, query.Page](cache.Size, nil, cache.TTL)
	}
	return uc
}
