package public

import (
	"errors"
	"strconv"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/gin-gonic/gin"
)

func parseSweetIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("sweet_id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid sweet id", nil)
		return 0, false
	}
	return uint(id), true
}

// ListFavorites returns the session's favorite sweets.
func (h *Handler) ListFavorites(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	sweets, err := h.FavoriteService.List(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "favorites fetch failed", err)
		return
	}
	response.Success(c, sweets)
}

// AddFavorite marks a sweet as favorite.
func (h *Handler) AddFavorite(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	sweetID, ok := parseSweetIDParam(c)
	if !ok {
		return
	}
	if err := h.FavoriteService.Add(c.Request.Context(), sessionID, sweetID); err != nil {
		if errors.Is(err, service.ErrSweetNotFound) {
			response.NotFound(c, "sweet not found")
			return
		}
		respondError(c, response.CodeInternal, "favorite update failed", err)
		return
	}
	response.SuccessWithMsg(c, "favorite added", nil)
}

// RemoveFavorite unmarks a favorite.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	sweetID, ok := parseSweetIDParam(c)
	if !ok {
		return
	}
	if err := h.FavoriteService.Remove(c.Request.Context(), sessionID, sweetID); err != nil {
		respondError(c, response.CodeInternal, "favorite update failed", err)
		return
	}
	response.SuccessWithMsg(c, "favorite removed", nil)
}
