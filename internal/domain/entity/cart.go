package entity

// CartLine is one line of a cart: the product fields copied at add-time
// plus a positive quantity. Copying the product means a later catalog edit
// or deletion never retroactively changes what is already in a cart.
// Invariant: at most one line per product id within one cart.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the active identity's pending line items together with the
// totals derived from them. Totals are always recomputed from the lines,
// never stored, so they cannot drift.
type Cart struct {
	Identity      Identity   `json:"identity"`
	Lines         []CartLine `json:"lines"`
	TotalQuantity int        `json:"totalQuantity"`
	TotalCost     float64    `json:"totalCost"`
}

// NewCart derives a Cart view from the stored lines for an identity.
func NewCart(identity Identity, lines []CartLine) *Cart {
	cart := &Cart{
		Identity: identity,
		Lines:    lines,
	}
	for _, line := range lines {
		cart.TotalQuantity += line.Quantity
		cart.TotalCost += line.Price * float64(line.Quantity)
	}

	return cart
}
