package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductDraft is the admin form input for a new product.
type ProductDraft struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image" validate:"omitempty,uri"`
}

// ProductUpdate replaces a stored product field-by-field.
type ProductUpdate struct {
	ID          int64   `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image" validate:"omitempty,uri"`
	SoldOut     bool    `json:"soldOut"`
}

// CatalogUsecase manages the global, admin-editable product list.
// It does not enforce sold-out restrictions; that policy lives in the
// purchase flow.
type CatalogUsecase interface {
	// Seed makes sure the product record exists, writing the default
	// catalog on first run.
	Seed(ctx context.Context) error

	// ListProducts returns the full product list, newest first.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct returns one product by id.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// AddProduct assigns a fresh timestamp-derived id and prepends the
	// product, available for sale.
	AddProduct(ctx context.Context, draft *ProductDraft) (*entity.Product, error)

	// UpdateProduct replaces the stored product with the matching id.
	UpdateProduct(ctx context.Context, update *ProductUpdate) (*entity.Product, error)

	// DeleteProduct hard-deletes the product. Carts and orders keep their
	// own copies, so nothing cascades.
	DeleteProduct(ctx context.Context, id int64) error
}
