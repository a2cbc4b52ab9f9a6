package commands

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var (
	ErrSeedSampleDataCommandIsNotConstructed = errors.New(
		"SeedSampleDataCommand must be created via NewSeedSampleDataCommand constructor",
	)
	ErrSeedNeedsTwoProducts = errors.New("sample data needs at least two products")
	ErrSeedNeedsDriver      = errors.New("sample data needs at least one driver")
)

type SampleCustomer struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type SampleProduct struct {
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
}

type SampleDriver struct {
	Name    string
	Phone   string
	Vehicle string
}

// SeedSampleDataCommand populates a development database. Customers are keyed by email,
// products and drivers by name.
type SeedSampleDataCommand struct { //nolint:recvcheck //using for validation
	customers []SampleCustomer
	products  []SampleProduct
	drivers   []SampleDriver

	guard guard.ConstructorGuard
}

// NewSeedSampleDataCommand needs two products: sample deliveries alternate between the
// first product alone and the second plus the first.
func NewSeedSampleDataCommand(
	customers []SampleCustomer,
	products []SampleProduct,
	drivers []SampleDriver,
) (SeedSampleDataCommand, error) {
	if len(customers) > 0 {
		if len(products) < 2 {
			return SeedSampleDataCommand{}, ErrSeedNeedsTwoProducts
		}
		if len(drivers) == 0 {
			return SeedSampleDataCommand{}, ErrSeedNeedsDriver
		}
	}

	return SeedSampleDataCommand{
		customers: customers,
		products:  products,
		drivers:   drivers,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedSampleDataCommandIsNotConstructed if validation fails.
func (c SeedSampleDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedSampleDataCommandIsNotConstructed)
}

// Customers returns the sample customers, each given one delivery.
func (c SeedSampleDataCommand) Customers() []SampleCustomer {
	return c.customers
}

// Products returns the sample catalogue.
func (c SeedSampleDataCommand) Products() []SampleProduct {
	return c.products
}

// Drivers returns the sample drivers, assigned round-robin.
func (c SeedSampleDataCommand) Drivers() []SampleDriver {
	return c.drivers
}
