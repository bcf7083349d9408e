package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. It owns the
// buy-now cart substitution and the final conversion of a cart into an
// order; the ledger append itself is delegated to the order usecase.
type checkoutService struct {
	cartRepo    repository.CartRepository
	backupRepo  repository.CartBackupRepository
	productRepo repository.ProductRepository
	orders      usecase.OrderUsecase
	cfg         *config.CheckoutConfig
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	backupRepo repository.CartBackupRepository,
	productRepo repository.ProductRepository,
	orders usecase.OrderUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:    cartRepo,
		backupRepo:  backupRepo,
		productRepo: productRepo,
		orders:      orders,
		cfg:         cfg.Checkout,
		validate:    validator.New(),
		logger:      logger,
	}
}

// BeginBuyNow backs up the current cart and replaces it with a single
// line for the product. Starting a second buy-now before the first
// resolves keeps the oldest backup, so the pre-substitution cart is
// what gets restored.
func (srv *checkoutService) BeginBuyNow(ctx context.Context, productID int64) (*entity.Cart, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	var product *entity.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]

			break
		}
	}

	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	if product.SoldOut {
		return nil, domainerrors.ErrProductSoldOut
	}

	lines, err := srv.cartRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if _, exists, err := srv.backupRepo.Load(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "failed to load cart backup")
	} else if !exists {
		if err := srv.backupRepo.Save(ctx, identity, lines); err != nil {
			return nil, errors.Wrap(err, "failed to save cart backup")
		}
	}

	substituted := []entity.CartLine{{Product: *product, Quantity: 1}}
	if err := srv.cartRepo.Save(ctx, identity, substituted); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.logger.Debug("Buy-now started", "identity", identity, "productID", productID)

	return entity.NewCart(identity, substituted), nil
}

// AbandonBuyNow restores the backed-up cart and discards the backup.
func (srv *checkoutService) AbandonBuyNow(ctx context.Context) (*entity.Cart, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	backup, exists, err := srv.backupRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart backup")
	}

	if !exists {
		return nil, domainerrors.ErrNoActiveBuyNow
	}

	if err := srv.cartRepo.Save(ctx, identity, backup); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	if err := srv.backupRepo.Clear(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart backup")
	}

	srv.logger.Debug("Buy-now abandoned", "identity", identity)

	return entity.NewCart(identity, backup), nil
}

// Checkout validates the shipping details, simulates payment processing,
// appends the order to the ledger and clears the cart. An active buy-now
// restores the backed-up cart instead of leaving it empty.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	identity := deliverycontext.CurrentIdentity(ctx)

	lines, err := srv.cartRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	if err := srv.simulateProcessing(ctx); err != nil {
		return nil, err
	}

	shipping := entity.ShippingDetails{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		City:    input.City,
		Zip:     input.Zip,
	}

	cart := entity.NewCart(identity, lines)

	order, err := srv.orders.PlaceOrder(ctx, lines, shipping, cart.TotalCost)
	if err != nil {
		return nil, err
	}

	// The purchased cart is done with; what replaces it depends on
	// whether this checkout was a buy-now substitution.
	restored := []entity.CartLine{}
	if backup, exists, err := srv.backupRepo.Load(ctx, identity); err != nil {
		return nil, errors.Wrap(err, "failed to load cart backup")
	} else if exists {
		restored = backup

		if err := srv.backupRepo.Clear(ctx, identity); err != nil {
			return nil, errors.Wrap(err, "failed to clear cart backup")
		}
	}

	if err := srv.cartRepo.Save(ctx, identity, restored); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return order, nil
}

// simulateProcessing stands in for a payment gateway round-trip.
func (srv *checkoutService) simulateProcessing(ctx context.Context) error {
	delay := time.Duration(0)
	if srv.cfg != nil {
		delay = srv.cfg.ProcessingDelay
	}

	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "checkout aborted")
	case <-timer.C:
		return nil
	}
}
