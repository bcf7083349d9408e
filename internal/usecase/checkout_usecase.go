package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutInput carries the shipping form submitted with a checkout.
type CheckoutInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

// CheckoutUsecase drives the purchase flow: the buy-now cart
// substitution and the final conversion of a cart into an order.
type CheckoutUsecase interface {
	// BeginBuyNow backs up the current cart and replaces it with a
	// single line for the given product. The backup lives only for the
	// session; restarting the service abandons it.
	BeginBuyNow(ctx context.Context, productID int64) (*entity.Cart, error)

	// AbandonBuyNow restores the backed-up cart and discards the backup.
	// Fails if no buy-now flow is active.
	AbandonBuyNow(ctx context.Context) (*entity.Cart, error)

	// Checkout validates the shipping details, simulates payment
	// processing, appends the order to the ledger and clears the cart.
	// If a buy-now backup exists the original cart is restored instead
	// of left empty.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
}
