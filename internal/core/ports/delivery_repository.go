package ports

import (
	"context"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates and
// their line items.
type DeliveryRepository interface {
	// Add persists a new delivery with all of its line items.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists the driver, expected time, status and address. Line items are
	// immutable after Add.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate is Get with the delivery row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Delete removes a delivery with its line items and payment. Stock is not restored.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsForCustomer reports whether the customer has at least one delivery.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}
