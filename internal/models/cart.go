package models

import "fmt"

// CartItem is one line of a session cart. Carts live in the session
// key-value store as JSON, not in the database.
type CartItem struct {
	// ID identifies a cart line within its cart. Lines are keyed by
	// sweet and variant, so adding the same combination again merges
	// quantities instead of producing a duplicate line.
	ID           string `json:"id"`
	SweetID      uint   `json:"sweet_id"`
	SweetName    string `json:"sweet_name"`
	Image        string `json:"image,omitempty"`
	// BasePrice is the catalog price for the 500g reference variant.
	BasePrice    Money  `json:"base_price"`
	VariantLabel string `json:"selected_quantity"`
	Quantity     int    `json:"quantity"`
	// UnitPrice is the variant-adjusted price for a single unit.
	UnitPrice    Money  `json:"price"`
}

// CartLineID builds the merge key for a sweet/variant combination.
func CartLineID(sweetID uint, variantLabel string) string {
	return fmt.Sprintf("%d:%s", sweetID, variantLabel)
}

// Cart is the full session cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemCount returns the total unit count across all lines.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
