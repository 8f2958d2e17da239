package public

import (
	"errors"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a business error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrSweetNotFound, code: response.CodeNotFound, msg: "sweet not found"},
	{target: service.ErrVariantInvalid, code: response.CodeBadRequest, msg: "unknown variant"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity must be positive"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrCheckoutInFlight, code: response.CodeConflict, msg: "checkout already in progress"},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest, msg: "insufficient stock"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrSweetNotFound, code: response.CodeNotFound, msg: "sweet not found"},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest, msg: "insufficient stock"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity must be positive"},
}
