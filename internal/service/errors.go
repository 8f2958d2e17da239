package service

import (
	"errors"
	"fmt"
)

var (
	ErrSweetNotFound     = errors.New("sweet not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrQuantityInvalid   = errors.New("quantity invalid")
	ErrVariantInvalid    = errors.New("variant invalid")
	ErrCheckoutInFlight  = errors.New("checkout already in progress")
	ErrStockInsufficient = errors.New("stock insufficient")
	ErrOrderNotFound     = errors.New("order not found")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
)

// ValidationError reports the first invalid checkout field.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}
