package entity

// Product is one entry in the global catalog. IDs are derived from the
// creation timestamp in milliseconds, which keeps them unique and roughly
// ordered within a running process. Products are not user-scoped.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // Non-negative decimal.
	Description string  `json:"description"`
	Image       string  `json:"image"` // Image URI.
	SoldOut     bool    `json:"soldOut"`
}
