// Package ports defines the persistence contracts of the distributor domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. Returns customer.ErrEmailIsAlreadyRegistered when the
	// email belongs to another customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists the contact fields. Returns customer.ErrEmailIsAlreadyRegistered when
	// the new email belongs to another customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id or returns errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by its unique email or returns errs.ErrObjectNotFound.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// Delete removes a customer together with its deliveries, their line items and payments.
	Delete(ctx context.Context, id kernel.UUID) error
}
