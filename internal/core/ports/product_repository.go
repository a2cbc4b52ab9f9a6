package ports

import (
	"context"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists every editable field and the stock count.
	Update(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByName retrieves the first product with exactly this name.
	GetByName(ctx context.Context, name string) (*product.Product, error)

	// GetForUpdate loads the products and locks their rows until the surrounding
	// transaction ends. Rows are locked in id order so that two transactions locking
	// overlapping sets cannot deadlock. A missing id yields errs.ErrObjectNotFound.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// Delete removes a product and every line item that references it. Deliveries and
	// payments stay.
	Delete(ctx context.Context, id kernel.UUID) error
}
