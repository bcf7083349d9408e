package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// defaultProducts populate an empty catalog on first run.
var defaultProducts = []entity.Product{
	{ID: 1, Name: "Premium Office Chair", Price: 349.99, Description: "Ergonomic chair with lumbar support.", Image: "https://placehold.co/400x300/403075/ffffff?text=Chair"},
	{ID: 2, Name: "Mechanical Keyboard", Price: 120.00, Description: "RGB backlit, tactile switches.", Image: "https://placehold.co/400x300/307550/ffffff?text=Keyboard"},
	{ID: 3, Name: "Wireless Mouse", Price: 45.50, Description: "Silent click, 1600 DPI.", Image: "https://placehold.co/400x300/753030/ffffff?text=Mouse"},
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger

	// idMu serializes id generation so two adds within the same
	// millisecond still get distinct ids.
	idMu   sync.Mutex
	lastID int64
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Seed writes the default catalog when the product record is absent or
// unreadable. A populated catalog is left untouched.
func (srv *catalogService) Seed(ctx context.Context) error {
	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load products")
	}

	if len(products) > 0 {
		return nil
	}

	srv.logger.Info("Seeding default catalog", "count", len(defaultProducts))

	if err := srv.productRepo.SaveAll(ctx, defaultProducts); err != nil {
		return errors.Wrap(err, "failed to save seeded catalog")
	}

	return nil
}

// ListProducts returns the full product list, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	return products, nil
}

// GetProduct returns one product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

// AddProduct assigns a fresh timestamp-derived id and prepends the
// product to the catalog, available for sale.
func (srv *catalogService) AddProduct(ctx context.Context, draft *usecase.ProductDraft) (*entity.Product, error) {
	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	product := entity.Product{
		ID:          srv.nextID(),
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Image:       draft.Image,
		SoldOut:     false,
	}

	products = append([]entity.Product{product}, products...)

	if err := srv.productRepo.SaveAll(ctx, products); err != nil {
		return nil, errors.Wrap(err, "failed to save products")
	}

	srv.logger.Info("Product added", "productID", product.ID, "name", product.Name)

	return &product, nil
}

// UpdateProduct replaces the stored product with the matching id.
func (srv *catalogService) UpdateProduct(ctx context.Context, update *usecase.ProductUpdate) (*entity.Product, error) {
	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	for i := range products {
		if products[i].ID != update.ID {
			continue
		}

		products[i] = entity.Product{
			ID:          update.ID,
			Name:        update.Name,
			Price:       update.Price,
			Description: update.Description,
			Image:       update.Image,
			SoldOut:     update.SoldOut,
		}

		if err := srv.productRepo.SaveAll(ctx, products); err != nil {
			return nil, errors.Wrap(err, "failed to save products")
		}

		srv.logger.Info("Product updated", "productID", update.ID)

		return &products[i], nil
	}

	return nil, domainerrors.ErrProductNotFound
}

// DeleteProduct hard-deletes the product. Existing cart lines and order
// snapshots keep their own copies, so nothing cascades.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	products, err := srv.productRepo.LoadAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load products")
	}

	remaining := make([]entity.Product, 0, len(products))
	for i := range products {
		if products[i].ID != id {
			remaining = append(remaining, products[i])
		}
	}

	if len(remaining) == len(products) {
		return domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.SaveAll(ctx, remaining); err != nil {
		return errors.Wrap(err, "failed to save products")
	}

	srv.logger.Info("Product deleted", "productID", id)

	return nil
}

// nextID derives a millisecond-timestamp id, bumped past the previous
// one when the clock has not advanced.
func (srv *catalogService) nextID() int64 {
	srv.idMu.Lock()
	defer srv.idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= srv.lastID {
		id = srv.lastID + 1
	}
	srv.lastID = id

	return id
}
