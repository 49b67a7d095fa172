package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog-api/internal/product"
	productHTTP "product-catalog-api/internal/product/delivery/http"
	"product-catalog-api/internal/product/query"
	"product-catalog-api/internal/product/repository/memory"
	"product-catalog-api/internal/product/usecase"
	"product-catalog-api/pkg/log"
	"product-catalog-api/pkg/response"
)

type itemBody struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

type listBody struct {
	ErrorCode int `json:"error_code"`
	Data      struct {
		Items      []itemBody `json:"items"`
		Total      int        `json:"total"`
		Page       int        `json:"page"`
		Size       int        `json:"size"`
		TotalPages int        `json:"total_pages"`
	} `json:"data"`
}

type itemEnvelopeBody struct {
	Data struct {
		Item itemBody `json:"item"`
	} `json:"data"`
}

// failingUseCase fails every call with err.
type failingUseCase struct {
	err error
}

func (f failingUseCase) List(ctx context.Context, opt query.Options) (product.ListItemsOutput, error) {
	return product.ListItemsOutput{}, f.err
}
func (f failingUseCase) Create(ctx context.Context, input product.CreateItemInput) (product.CreateItemOutput, error) {
	return product.CreateItemOutput{}, f.err
}
func (f failingUseCase) Detail(ctx context.Context, id int64) (product.DetailItemOutput, error) {
	return product.DetailItemOutput{}, f.err
}
func (f failingUseCase) Update(ctx context.Context, input product.UpdateItemInput) (product.UpdateItemOutput, error) {
	return product.UpdateItemOutput{}, f.err
}
func (f failingUseCase) Delete(ctx context.Context, id int64) error { return f.err }
func (f failingUseCase) Import(ctx context.Context, inputs []product.CreateItemInput) (int, error) {
	return 0, f.err
}

func newRouter(uc product.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	productHTTP.RegisterRoutes(r.Group("/api/v1"), productHTTP.New(log.NewNop(), uc))
	return r
}

func newSeededRouter(t *testing.T, inputs ...product.CreateItemInput) *gin.Engine {
	t.Helper()
	uc := usecase.New(memory.New(), log.NewNop(), usecase.CacheConfig{})
	_, err := uc.Import(context.Background(), inputs)
	require.NoError(t, err)
	return newRouter(uc)
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listBody {
	t.Helper()
	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestList_Pagination(t *testing.T) {
	inputs := make([]product.CreateItemInput, 120)
	for i := range inputs {
		inputs[i] = product.CreateItemInput{
			Name:  fmt.Sprintf("Item %d", i+1),
			SKU:   fmt.Sprintf("SKU-%03d", i+1),
			Price: float64(i) * 100 / 119,
		}
	}
	r := newSeededRouter(t, inputs...)

	w := do(r, http.MethodGet, "/api/v1/products?size=25&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "120", w.Header().Get("X-Total-Count"))

	body := decodeList(t, w)
	require.Len(t, body.Data.Items, 25)
	assert.Equal(t, int64(26), body.Data.Items[0].ID)
	assert.Equal(t, int64(50), body.Data.Items[24].ID)
	assert.Equal(t, 120, body.Data.Total)
	assert.Equal(t, 5, body.Data.TotalPages)
}

func TestList_Scenarios(t *testing.T) {
	r := newSeededRouter(t,
		product.CreateItemInput{Name: "AWMPS", SKU: "AWMPS", Price: 10, IsAvailable: true},
		product.CreateItemInput{Name: "Widget", SKU: "WDGT", Price: 30, IsAvailable: false},
		product.CreateItemInput{Name: "Gadget", SKU: "GDGT", Price: 20, IsAvailable: true},
	)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"search term", "/api/v1/products?searchTerm=awm", []string{"AWMPS"}},
		{"sku exact", "/api/v1/products?sku=AWMPS", []string{"AWMPS"}},
		{"sku wrong case", "/api/v1/products?sku=awmps", []string{}},
		{"price desc", "/api/v1/products?sortBy=price&sortOrder=descending", []string{"WDGT", "GDGT", "AWMPS"}},
		{"price band", "/api/v1/products?minPrice=15&maxPrice=30", []string{"WDGT", "GDGT"}},
		{"availability", "/api/v1/products?searchTerm=true", []string{"AWMPS", "GDGT"}},
		{"unknown sort key", "/api/v1/products?sortBy=colour&sortOrder=descending", []string{"AWMPS", "WDGT", "GDGT"}},
		{"malformed values", "/api/v1/products?page=x&size=-1&minPrice=abc&sortOrder=up", []string{"AWMPS"}},
		{"beyond last page", "/api/v1/products?page=9", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, w.Code)

			body := decodeList(t, w)
			got := []string{}
			for _, item := range body.Data.Items {
				got = append(got, item.SKU)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_InternalError(t *testing.T) {
	r := newRouter(failingUseCase{err: fmt.Errorf("boom")})

	w := do(r, http.MethodGet, "/api/v1/products", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.DefaultErrorMessage, resp.Message)
}

func TestSortKeys(t *testing.T) {
	r := newSeededRouter(t)

	w := do(r, http.MethodGet, "/api/v1/products/sort-keys", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			SortKeys   []string `json:"sort_keys"`
			SortOrders []string `json:"sort_orders"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Data.SortKeys, "price")
	assert.Equal(t, []string{"ascending", "descending"}, body.Data.SortOrders)
}

func TestCreate(t *testing.T) {
	r := newSeededRouter(t)

	w := do(r, http.MethodPost, "/api/v1/products", map[string]any{"name": "Lamp", "sku": "LMP", "price": 12.5})
	require.Equal(t, http.StatusCreated, w.Code)

	var body itemEnvelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Data.Item.ID)
	assert.True(t, body.Data.Item.IsAvailable)

	w = do(r, http.MethodPost, "/api/v1/products", map[string]any{"name": "Other lamp", "sku": "LMP"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/api/v1/products", map[string]any{"name": "No sku"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/products", map[string]any{"name": "Negative", "sku": "NEG", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/products", map[string]any{"name": "   ", "sku": "BLANK"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetailUpdateDelete(t *testing.T) {
	r := newSeededRouter(t, product.CreateItemInput{Name: "Lamp", SKU: "LMP", Price: 20, IsAvailable: true})

	w := do(r, http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/products/2", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/products/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/products/0", nil).Code)

	w = do(r, http.MethodPut, "/api/v1/products/1", map[string]any{"price": 30, "is_available": false})
	require.Equal(t, http.StatusOK, w.Code)
	var body itemEnvelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Lamp", body.Data.Item.Name)
	assert.Equal(t, 30.0, body.Data.Item.Price)
	assert.False(t, body.Data.Item.IsAvailable)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/api/v1/products/7", map[string]any{"name": "x"}).Code)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/v1/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/v1/products/1", nil).Code)
}
