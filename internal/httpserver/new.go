package httpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"product-catalog-api/internal/middleware"
	"product-catalog-api/internal/product"
	"product-catalog-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw middleware.Middleware

	// Product domain
	productUC product.UseCase

	// readyCheck reports whether the storage can serve traffic.
	readyCheck func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies lists the proxy CIDRs whose forwarding headers are honoured.
	// Empty means the peer address is always the client.
	TrustedProxies []string

	Middleware middleware.Config

	// Product domain
	ProductUseCase product.UseCase

	// ReadyCheck is optional. Nil means always ready.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		productUC:   cfg.ProductUseCase,
		readyCheck:  cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mw = middleware.New(logger, cfg.Middleware)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.productUC == nil {
		return errors.New("product use case is required")
	}
	return nil
}
