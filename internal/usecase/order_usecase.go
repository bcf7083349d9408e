package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase manages the per-identity order ledger. Orders are
// append-only and immutable once placed, except for whole-record
// deletion.
type OrderUsecase interface {
	// PlaceOrder generates a fresh order id, stamps the current time and
	// prepends the order to the current identity's history.
	PlaceOrder(ctx context.Context, items []entity.CartLine, shipping entity.ShippingDetails, total float64) (*entity.Order, error)

	// ListOrders returns the current identity's orders, newest first.
	ListOrders(ctx context.Context) ([]entity.Order, error)

	// GetOrder finds one of the current identity's orders by id.
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// OrderQR renders a PNG confirmation code for one of the current
	// identity's orders.
	OrderQR(ctx context.Context, orderID string) ([]byte, error)

	// DeleteOrder removes an order from the named identity's history.
	// The owning identity must be passed explicitly; administrators may
	// delete from any identity's history, everyone else only their own.
	DeleteOrder(ctx context.Context, owner entity.Identity, orderID string) error

	// ListAllOrders returns every identity's orders tagged with their
	// owner, newest first. Administrative view.
	ListAllOrders(ctx context.Context) ([]entity.OwnedOrder, error)
}
