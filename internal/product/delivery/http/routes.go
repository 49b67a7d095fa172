package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/sort-keys", h.SortKeys)
		products.POST("", h.Create)
		products.GET("/:id", h.Detail)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
