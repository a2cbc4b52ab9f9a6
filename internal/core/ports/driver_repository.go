package ports

import (
	"context"

	"distributor/internal/core/domain/model/driver"
	"distributor/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists name, phone and vehicle.
	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByName retrieves the first driver with exactly this name.
	GetByName(ctx context.Context, name string) (*driver.Driver, error)

	// Delete removes a driver; its deliveries stay and become unassigned.
	Delete(ctx context.Context, id kernel.UUID) error
}
