package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	productHTTP "product-catalog-api/internal/product/delivery/http"
)

// setupProductDomain registers /api/v1/products.
//
// Storage and use case are built by the caller so the CLI can share them;
// only the delivery layer is wired here.
func (srv *HTTPServer) setupProductDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := productHTTP.New(srv.l, srv.productUC)
	productHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Product domain registered")
	return nil
}
