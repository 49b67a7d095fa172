package http

import (
	"strings"

	"product-catalog-api/internal/model"
	"product-catalog-api/internal/product"
	"product-catalog-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"         binding:"required,min=1,max=255"`
	Description string  `json:"description"  binding:"max=1000"`
	SKU         string  `json:"sku"          binding:"required,min=1,max=64"`
	Price       float64 `json:"price"        binding:"gte=0"`
	IsAvailable *bool   `json:"is_available"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.SKU) == "" {
		return product.ErrInvalidPayload
	}
	return nil
}

func (r createReq) toInput() product.CreateItemInput {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return product.CreateItemInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		SKU:         strings.TrimSpace(r.SKU),
		Price:       r.Price,
		IsAvailable: available,
	}
}

// ---

type updateReq struct {
	ID          int64    `json:"-"` // populated from URI param
	Name        string   `json:"name"         binding:"omitempty,min=1,max=255"`
	Description string   `json:"description"  binding:"omitempty,max=1000"`
	SKU         string   `json:"sku"          binding:"omitempty,min=1,max=64"`
	Price       *float64 `json:"price"        binding:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() product.UpdateItemInput {
	return product.UpdateItemInput{
		ID:          r.ID,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		SKU:         strings.TrimSpace(r.SKU),
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	SKU         string            `json:"sku"`
	Price       float64           `json:"price"`
	IsAvailable bool              `json:"is_available"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		SKU:         item.SKU,
		Price:       item.Price,
		IsAvailable: item.IsAvailable,
		CreatedAt:   response.DateTime(item.CreatedAt),
		UpdatedAt:   response.DateTime(item.UpdatedAt),
	}
}

type itemEnvelope struct {
	Item itemResp `json:"item"`
}

func (h *handler) newItemEnvelope(item model.Item) itemEnvelope {
	return itemEnvelope{Item: newItemResp(item)}
}

type listResp struct {
	Items      []itemResp `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Size       int        `json:"size"`
	TotalPages int        `json:"total_pages"`
}

func (h *handler) newListResp(out product.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:      items,
		Total:      out.Total,
		Page:       out.Page.Page,
		Size:       out.Size,
		TotalPages: out.TotalPages,
	}
}

type sortKeysResp struct {
	SortKeys   []string `json:"sort_keys"`
	SortOrders []string `json:"sort_orders"`
}
