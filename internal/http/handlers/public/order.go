package public

import (
	"errors"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders returns the session's order history, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	history, err := h.HistoryService.List(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "order history fetch failed", err)
		return
	}
	response.Success(c, history)
}

// GetOrder returns one order snapshot by id or order number.
func (h *Handler) GetOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	snapshot, err := h.HistoryService.Get(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}
	response.Success(c, snapshot)
}
