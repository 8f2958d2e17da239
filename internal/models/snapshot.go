package models

import "time"

// SnapshotItem is one line of an order snapshot, in the shape the
// upstream order API expects.
type SnapshotItem struct {
	SweetID      uint   `json:"sweet_id"`
	SweetName    string `json:"sweet_name"`
	VariantLabel string `json:"selected_quantity"`
	Quantity     int    `json:"quantity"`
	UnitPrice    Money  `json:"price"`
	TotalPrice   Money  `json:"total_price"`
}

// OrderSnapshot is the immutable record built at checkout. It is what
// gets submitted upstream and what the session order history stores;
// later cart or catalog changes never touch it.
type OrderSnapshot struct {
	ID              string         `json:"id"`
	OrderNo         string         `json:"order_no"`
	Status          string         `json:"status"`
	Currency        string         `json:"currency"`
	Subtotal        Money          `json:"subtotal"`
	Tax             Money          `json:"tax"`
	TotalAmount     Money          `json:"total_amount"`
	CustomerName    string         `json:"customer_name"`
	Email           string         `json:"email"`
	PhoneNumber     string         `json:"phone_number"`
	DeliveryAddress string         `json:"delivery_address"`
	Notes           string         `json:"notes,omitempty"`
	RemoteOrderID   string         `json:"remote_order_id,omitempty"`
	Items           []SnapshotItem `json:"order_items"`
	CreatedAt       time.Time      `json:"created_at"`
}
