package public

import (
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCart returns the session cart with totals.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, view)
}

// AddCartItem puts a sweet into the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var input service.AddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	view, err := h.CartService.Add(c.Request.Context(), sessionID, input)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, view)
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets a line's quantity; zero removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	lineID := c.Param("id")
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	view, err := h.CartService.UpdateQuantity(c.Request.Context(), sessionID, lineID, *req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, view)
}

// RemoveCartItem deletes a line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.Remove(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, view)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), sessionID); err != nil {
		respondError(c, response.CodeInternal, "cart clear failed", err)
		return
	}
	response.SuccessWithMsg(c, "cart cleared", gin.H{"item_count": 0})
}
