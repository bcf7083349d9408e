package entity

import "time"

// ShippingDetails is the address block captured at checkout. All fields
// are required; validation happens before an order is placed.
type ShippingDetails struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

// Order is one placed order. Orders are append-only per identity and
// immutable once created, except for whole-record deletion (cancellation).
type Order struct {
	OrderID         string          `json:"orderId"`
	Date            time.Time       `json:"date"`
	Items           []CartLine      `json:"items"` // Snapshot of the purchased lines.
	Total           float64         `json:"total"`
	ShippingDetails ShippingDetails `json:"shippingDetails"`
}

// OwnedOrder is an order annotated with its owning identity. It only
// appears in the admin aggregation view, which is computed on demand and
// never stored.
type OwnedOrder struct {
	Order
	Owner Identity `json:"owner"`
}
