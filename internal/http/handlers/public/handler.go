// Package public holds the storefront API handlers.
package public

import "github.com/TejasDharmale/Kata-Sweet-shop-management/internal/provider"

// Handler is the storefront handler entry point.
type Handler struct {
	*provider.Container
}

// New builds the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
