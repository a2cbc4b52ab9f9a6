package commands

import (
	"context"
	"errors"
	"time"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/driver"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/product"
	"distributor/internal/pkg/errs"
)

// SeedSampleDataResult counts the records the seeder created. Records that already
// existed are not counted.
type SeedSampleDataResult struct {
	Customers  int
	Products   int
	Drivers    int
	Deliveries int
}

// SeedSampleDataCommandHandler runs the whole seed in one transaction. Running it again
// creates nothing: every record is looked up by its natural key first, and a sample delivery
// is only placed for a customer without deliveries. No payments are created, so a payment
// still exists only for deliveries that went through completion.
type SeedSampleDataCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewSeedSampleDataCommandHandler(uowFactory UoWFactory, clock Clock) SeedSampleDataCommandHandler {
	return SeedSampleDataCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *SeedSampleDataCommandHandler) Handle(ctx context.Context, cmd SeedSampleDataCommand) (SeedSampleDataResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedSampleDataResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedSampleDataResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		result = SeedSampleDataResult{}
		now    = h.clock.now()
	)

	customers := make([]*customer.Customer, 0, len(cmd.Customers()))
	for _, in := range cmd.Customers() {
		c, created, err := getOrCreateCustomer(ctx, uow, in, now)
		if err != nil {
			return SeedSampleDataResult{}, err
		}
		if created {
			result.Customers++
		}
		customers = append(customers, c)
	}

	products := make([]*product.Product, 0, len(cmd.Products()))
	for _, in := range cmd.Products() {
		p, created, err := getOrCreateProduct(ctx, uow, in, now)
		if err != nil {
			return SeedSampleDataResult{}, err
		}
		if created {
			result.Products++
		}
		products = append(products, p)
	}

	drivers := make([]*driver.Driver, 0, len(cmd.Drivers()))
	for _, in := range cmd.Drivers() {
		d, created, err := getOrCreateDriver(ctx, uow, in)
		if err != nil {
			return SeedSampleDataResult{}, err
		}
		if created {
			result.Drivers++
		}
		drivers = append(drivers, d)
	}

	deliveries := uow.DeliveryRepository()
	for i, c := range customers {
		exists, err := deliveries.ExistsForCustomer(ctx, c.ID())
		if err != nil {
			return SeedSampleDataResult{}, err
		}
		if exists {
			continue
		}

		d, err := sampleDelivery(i, c, drivers, products, now)
		if err != nil {
			return SeedSampleDataResult{}, err
		}
		if err = deliveries.Add(ctx, d); err != nil {
			return SeedSampleDataResult{}, err
		}
		result.Deliveries++
	}

	if err := uow.Commit(ctx); err != nil {
		return SeedSampleDataResult{}, err
	}

	return result, nil
}

// sampleDelivery builds the i-th sample delivery: drivers round-robin, expected 2+i hours
// from now, one unit of the first product on even positions and one of the second plus
// one of the first on odd positions.
func sampleDelivery(
	i int,
	c *customer.Customer,
	drivers []*driver.Driver,
	products []*product.Product,
	now time.Time,
) (*delivery.Delivery, error) {
	productIDs := []kernel.UUID{products[0].ID()}
	if i%2 == 1 {
		productIDs = []kernel.UUID{products[1].ID(), products[0].ID()}
	}

	items := make([]delivery.LineItem, 0, len(productIDs))
	for _, id := range productIDs {
		li, err := delivery.NewLineItem(kernel.NewUUID(), id, 1)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	driverID := drivers[i%len(drivers)].ID()
	expected := now.Add(time.Duration(2+i) * time.Hour)

	return delivery.NewDelivery(kernel.NewUUID(), c.ID(), &driverID, now, expected, c.Address(), items)
}

func getOrCreateCustomer(ctx context.Context, uow UoW, in SampleCustomer, now time.Time) (*customer.Customer, bool, error) {
	c, err := customer.NewCustomer(kernel.NewUUID(), in.Name, in.Address, in.Phone, in.Email, now)
	if err != nil {
		return nil, false, err
	}

	repo := uow.CustomerRepository()
	existing, err := repo.GetByEmail(ctx, c.Email())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func getOrCreateProduct(ctx context.Context, uow UoW, in SampleProduct, now time.Time) (*product.Product, bool, error) {
	p, err := product.NewProduct(kernel.NewUUID(), in.Name, in.Description, in.Price, in.Stock, now)
	if err != nil {
		return nil, false, err
	}

	repo := uow.ProductRepository()
	existing, err := repo.GetByName(ctx, p.Name())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	if err = repo.Add(ctx, p); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func getOrCreateDriver(ctx context.Context, uow UoW, in SampleDriver) (*driver.Driver, bool, error) {
	d, err := driver.NewDriver(kernel.NewUUID(), in.Name, in.Phone, in.Vehicle)
	if err != nil {
		return nil, false, err
	}

	repo := uow.DriverRepository()
	existing, err := repo.GetByName(ctx, d.Name())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	if err = repo.Add(ctx, d); err != nil {
		return nil, false, err
	}
	return d, true, nil
}
