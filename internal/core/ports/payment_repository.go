package ports

import (
	"context"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// There is at most one payment per delivery.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists amount, method, status and paid-at of an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetByDelivery retrieves the payment of a delivery or returns errs.ErrObjectNotFound.
	GetByDelivery(ctx context.Context, deliveryID kernel.UUID) (*payment.Payment, error)
}
