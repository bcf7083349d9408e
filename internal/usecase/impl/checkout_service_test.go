package impl

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_RejectsIncompleteShipping(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, &usecase.CheckoutInput{Name: "Only Name"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	// Nothing was placed.
	orders, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_RejectsEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.checkout.Checkout(asGuest(), testShipping)
	require.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlacesOrderAndClearsCart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 2, Quantity: 2})
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 3, Quantity: 1})
	require.NoError(t, err)

	order, err := f.checkout.Checkout(ctx, testShipping)
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-\d+-\d+$`, order.OrderID)
	assert.InDelta(t, 2*120.00+45.50, order.Total, 0.001)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Client Shopper", order.ShippingDetails.Name)

	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	found, err := f.orders.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, found.OrderID)
}

func TestCheckoutService_BuyNowSubstitutesCart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	cart, err := f.checkout.BeginBuyNow(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(3), cart.Lines[0].ID)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCheckoutService_BuyNowRejectsSoldOut(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.catalog.UpdateProduct(ctx, &usecase.ProductUpdate{
		ID:      3,
		Name:    "Wireless Mouse",
		Price:   45.50,
		SoldOut: true,
	})
	require.NoError(t, err)

	_, err = f.checkout.BeginBuyNow(ctx, 3)
	require.ErrorIs(t, err, domainerrors.ErrProductSoldOut)
}

func TestCheckoutService_AbandonBuyNowRestoresCart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	_, err = f.checkout.BeginBuyNow(ctx, 3)
	require.NoError(t, err)

	cart, err := f.checkout.AbandonBuyNow(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].ID)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	// The backup is gone; abandoning again fails.
	_, err = f.checkout.AbandonBuyNow(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoActiveBuyNow)
}

func TestCheckoutService_AbandonWithoutBuyNow(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.checkout.AbandonBuyNow(asGuest())
	require.ErrorIs(t, err, domainerrors.ErrNoActiveBuyNow)
}

func TestCheckoutService_BuyNowCheckoutRestoresOriginalCart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	_, err = f.checkout.BeginBuyNow(ctx, 3)
	require.NoError(t, err)

	order, err := f.checkout.Checkout(ctx, testShipping)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(3), order.Items[0].ID)
	assert.InDelta(t, 45.50, order.Total, 0.001)

	// The pre-substitution cart is back in place of an empty one.
	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].ID)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCheckoutService_BackupDoesNotSurviveRestart(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := asGuest()

	_, err := f.cart.AddItem(ctx, &usecase.AddItemInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	_, err = f.checkout.BeginBuyNow(ctx, 3)
	require.NoError(t, err)

	// A restart keeps the durable store but replaces the session one,
	// exactly like the original checkout-lifetime storage.
	restarted := newFixtureWithStores(t, f.durable, memory.NewStore())

	_, err = restarted.checkout.AbandonBuyNow(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoActiveBuyNow)
}

func TestCheckoutService_ScopedByIdentity(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	guest := asGuest()
	alice := asIdentity("alice@shop.com", entity.RoleClient)

	_, err := f.cart.AddItem(guest, &usecase.AddItemInput{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = f.cart.AddItem(alice, &usecase.AddItemInput{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	order, err := f.checkout.Checkout(alice, testShipping)
	require.NoError(t, err)
	assert.Equal(t, int64(2), order.Items[0].ID)

	// Alice's checkout must not touch the guest cart or history.
	guestCart, err := f.cart.GetCart(guest)
	require.NoError(t, err)
	assert.Len(t, guestCart.Lines, 1)

	guestOrders, err := f.orders.ListOrders(guest)
	require.NoError(t, err)
	assert.Empty(t, guestOrders)
}
