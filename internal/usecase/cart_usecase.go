package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddItemInput names a catalog product and how many of it to add.
type AddItemInput struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"omitempty,gte=1"`
}

// RemoveItemOutput reports which item a removal dropped, by name, or a
// generic label when the id was not in the cart.
type RemoveItemOutput struct {
	Removed string       `json:"removed"`
	Cart    *entity.Cart `json:"cart"`
}

// CartUsecase manages the pending line items of the current identity.
// Every operation scopes itself through the request's resolved identity,
// so an identity switch can never surface another identity's lines.
type CartUsecase interface {
	// GetCart returns the current identity's cart with derived totals.
	GetCart(ctx context.Context) (*entity.Cart, error)

	// AddItem merges the product into an existing line (quantities sum)
	// or appends a new line. Sold-out products are rejected here, at the
	// entry to the purchase flow.
	AddItem(ctx context.Context, input *AddItemInput) (*entity.Cart, error)

	// UpdateQuantity sets a line's quantity verbatim. Zero removes the
	// line; a negative value is rejected without mutating anything.
	UpdateQuantity(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)

	// RemoveItem deletes the line if present.
	RemoveItem(ctx context.Context, productID int64) (*RemoveItemOutput, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// ReplaceAll atomically swaps the entire cart contents. Escape hatch
	// for the buy-now substitution flow.
	ReplaceAll(ctx context.Context, lines []entity.CartLine) (*entity.Cart, error)
}
