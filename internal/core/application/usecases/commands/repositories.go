// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"distributor/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work covering the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// DeliveryUoW manages transactions that place deliveries or change their status.
	// Placing a delivery reads its customer, driver and products.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		CustomerRepoFactory
		DriverRepoFactory
		ProductRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CompletionUoW manages the delivery completion transaction, which locks the
	// delivery and its products and writes the payment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().GetForUpdate(ctx, id)
	//   products, err := uow.ProductRepository().GetForUpdate(ctx, d.ProductIDs())
	//   // ... complete, persist
	//
	//   err = uow.Commit(ctx)
	CompletionUoW interface {
		TxManager
		DeliveryRepoFactory
		ProductRepoFactory
		PaymentRepoFactory
	}

	CompletionUoWFactory interface {
		Create() CompletionUoW
	}

	// UoW spans every aggregate. Used by the sample data seeder.
	UoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
		PaymentRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current time. Handlers default to time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
