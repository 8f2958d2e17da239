package public

import (
	"strconv"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/gin-gonic/gin"
)

func parseSweetFilter(c *gin.Context) repository.SweetListFilter {
	filter := repository.SweetListFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "0")); err == nil {
		filter.PageSize = pageSize
	}
	return filter
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// ListSweets returns the catalog, optionally filtered.
func (h *Handler) ListSweets(c *gin.Context) {
	filter := parseSweetFilter(c)
	sweets, total, err := h.CatalogService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "catalog fetch failed", err)
		return
	}
	if filter.PageSize > 0 {
		totalPage := (total + int64(filter.PageSize) - 1) / int64(filter.PageSize)
		response.SuccessWithPage(c, sweets, response.Pagination{
			Page:      filter.Page,
			PageSize:  filter.PageSize,
			Total:     total,
			TotalPage: totalPage,
		})
		return
	}
	response.Success(c, sweets)
}

// SearchSweets is the search alias over the same filter set.
func (h *Handler) SearchSweets(c *gin.Context) {
	h.ListSweets(c)
}

// GetSweet returns one catalog entry.
func (h *Handler) GetSweet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	sweet, err := h.CatalogService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "catalog fetch failed")
		return
	}
	response.Success(c, sweet)
}

// CreateSweet adds a catalog entry (admin key required).
func (h *Handler) CreateSweet(c *gin.Context) {
	var input service.CreateSweetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	sweet, err := h.CatalogService.Create(input)
	if err != nil {
		respondError(c, response.CodeInternal, "sweet create failed", err)
		return
	}
	response.Success(c, sweet)
}

type stockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PurchaseSweet decrements stock for a direct purchase.
func (h *Handler) PurchaseSweet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	sweet, err := h.CatalogService.Purchase(id, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "purchase failed")
		return
	}
	response.Success(c, sweet)
}

// RestockSweet adds stock back (admin key required).
func (h *Handler) RestockSweet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	sweet, err := h.CatalogService.Restock(id, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "restock failed")
		return
	}
	response.Success(c, sweet)
}
