package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"product-catalog-api/internal/product/query"
	"product-catalog-api/pkg/response"
)

const headerTotalCount = "X-Total-Count"

// List godoc
// @Summary     List products
// @Description Filters, searches, sorts and paginates the catalog. Malformed values fall back to defaults instead of failing.
// @Tags        Products
// @Produce     json
// @Param       page       query int    false "Page number, starting at 1 (default: 1)"
// @Param       size       query int    false "Page size, clamped to 1..100 (default: 50)"
// @Param       sortBy     query string false "Sort key, see /products/sort-keys (default: id)"
// @Param       sortOrder  query string false "ascending or descending (default: ascending)"
// @Param       minPrice   query number false "Inclusive lower price bound"
// @Param       maxPrice   query number false "Inclusive upper price bound"
// @Param       name       query string false "Case-insensitive name substring"
// @Param       sku        query string false "Exact, case-sensitive SKU"
// @Param       searchTerm query string false "Name or SKU substring; true/false filters on availability"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	opt := h.processListReq(c)

	output, err := h.uc.List(ctx, opt)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(headerTotalCount, strconv.Itoa(output.Total))
	response.OK(c, h.newListResp(output))
}

// SortKeys godoc
// @Summary     List sort keys
// @Description Returns the attribute names accepted by sortBy and the accepted sortOrder values.
// @Tags        Products
// @Produce     json
// @Success     200 {object} sortKeysResp
// @Router      /api/v1/products/sort-keys [GET]
func (h *handler) SortKeys(c *gin.Context) {
	response.OK(c, sortKeysResp{
		SortKeys:   query.SortKeys(),
		SortOrders: []string{string(query.Ascending), string(query.Descending)},
	})
}

// Create godoc
// @Summary     Create a product
// @Description Creates a new catalog item. SKUs are unique and case-sensitive.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} itemEnvelope
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - sku already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemEnvelope(output.Item))
}

// Detail godoc
// @Summary     Get product detail
// @Description Returns a single item by its ID.
// @Tags        Products
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Update godoc
// @Summary     Update a product
// @Description Updates an existing item. All fields are optional (partial update).
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - sku already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Delete godoc
// @Summary     Delete a product
// @Description Permanently removes an item by ID.
// @Tags        Products
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
