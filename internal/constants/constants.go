package constants

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Variant labels (weight tiers)
const (
	VariantQuarterKilo = "250g"
	VariantHalfKilo    = "500g"
	VariantFullKilo    = "1kg"
)

// Session store key prefixes
const (
	StoreKeyCart         = "cart"
	StoreKeyOrderHistory = "orderHistory"
	StoreKeyFavorites    = "favorites"
)

// Queue names
const (
	QueueDefault = "default"
)

// Task names
const (
	TaskOrderConfirmationEmail = "email:order_confirmation"
)

// Currency
const (
	CurrencyDefault = "INR"
)
