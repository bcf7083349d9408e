package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. Every operation
// scopes itself through the request identity resolved from context.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the current identity's cart with derived totals.
func (srv *cartService) GetCart(ctx context.Context) (*entity.Cart, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	lines, err := srv.cartRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return entity.NewCart(identity, lines), nil
}

// AddItem merges the product into an existing line or appends a new one.
// Sold-out products are rejected here, at the entry to the purchase flow.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.Cart, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	var product *entity.Product
	for i := range products {
		if products[i].ID == input.ProductID {
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

	merged := false
	for i := range lines {
		if lines[i].ID == product.ID {
			lines[i].Quantity += quantity
			merged = true

			break
		}
	}

	if !merged {
		lines = append(lines, entity.CartLine{Product: *product, Quantity: quantity})
	}

	if err := srv.cartRepo.Save(ctx, identity, lines); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.logger.Debug("Cart item added", "identity", identity, "productID", product.ID, "quantity", quantity)

	return entity.NewCart(identity, lines), nil
}

// UpdateQuantity sets a line's quantity verbatim. Zero removes the line,
// a negative value is rejected without mutating anything.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrNegativeQuantity
	}

	identity := deliverycontext.CurrentIdentity(ctx)

	lines, err := srv.cartRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	updated := make([]entity.CartLine, 0, len(lines))
	for i := range lines {
		if lines[i].ID != productID {
			updated = append(updated, lines[i])

			continue
		}

		if quantity == 0 {
			continue
		}

		line := lines[i]
		line.Quantity = quantity
		updated = append(updated, line)
	}

	if err := srv.cartRepo.Save(ctx, identity, updated); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return entity.NewCart(identity, updated), nil
}

// RemoveItem deletes the line if present, reporting the removed item's
// name or a generic label when the id was not in the cart.
func (srv *cartService) RemoveItem(ctx context.Context, productID int64) (*usecase.RemoveItemOutput, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	lines, err := srv.cartRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	removed := "Item"
	remaining := make([]entity.CartLine, 0, len(lines))

	for i := range lines {
		if lines[i].ID == productID {
			removed = lines[i].Name

			continue
		}

		remaining = append(remaining, lines[i])
	}

	if err := srv.cartRepo.Save(ctx, identity, remaining); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return &usecase.RemoveItemOutput{
		Removed: removed,
		Cart:    entity.NewCart(identity, remaining),
	}, nil
}

// Clear empties the current identity's cart.
func (srv *cartService) Clear(ctx context.Context) error {
	identity := deliverycontext.CurrentIdentity(ctx)

	if err := srv.cartRepo.Save(ctx, identity, []entity.CartLine{}); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// ReplaceAll atomically swaps the entire cart contents.
func (srv *cartService) ReplaceAll(ctx context.Context, lines []entity.CartLine) (*entity.Cart, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	if lines == nil {
		lines = []entity.CartLine{}
	}

	if err := srv.cartRepo.Save(ctx, identity, lines); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return entity.NewCart(identity, lines), nil
}
