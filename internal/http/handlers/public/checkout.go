package public

import (
	"errors"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/gin-gonic/gin"
)

// Checkout converts the session cart into an order.
func (h *Handler) Checkout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var input service.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	snapshot, err := h.CheckoutService.Checkout(c.Request.Context(), sessionID, input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithData(c, response.CodeBadRequest, "validation failed", gin.H{
				"field":  verr.Field,
				"reason": verr.Reason,
			})
			return
		}
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
		return
	}
	response.Success(c, snapshot)
}
