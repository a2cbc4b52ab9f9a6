package cmd

import (
	"context"
	"log/slog"
	"time"

	httpin "distributor/internal/adapters/in/http"
	"distributor/internal/adapters/out/postgres"
	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/services"
	"distributor/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      commands.Clock
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveryInTransitCommandHandler() commands.MarkDeliveryInTransitCommandHandler {
	return commands.NewMarkDeliveryInTransitCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveryDeliveredCommandHandler() commands.MarkDeliveryDeliveredCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveryDeliveredCommandHandler(f, services.NewDeliveryCompleter(), c.clock)
}

func (c *CompositionRoot) CreateSeedSampleDataCommandHandler() commands.SeedSampleDataCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedSampleDataCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetCustomerAddressQueryHandler() queries.GetCustomerAddressQueryHandler {
	return queries.NewGetCustomerAddressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPaymentsQueryHandler() queries.ListPaymentsQueryHandler {
	return queries.NewListPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueDeliveriesQueryHandler() queries.GetOverdueDeliveriesQueryHandler {
	return queries.NewGetOverdueDeliveriesQueryHandler(c.gormDB)
}

// CreateWebServer wires every use case into the echo server.
func (c *CompositionRoot) CreateWebServer(ctx context.Context) (*echo.Echo, error) {
	auth, err := httpin.NewAuthenticator(httpin.AuthConfig{
		Username:     c.cfg.AdminUsername,
		PasswordHash: c.cfg.AdminPasswordHash,
		Secret:       c.cfg.JWTSecret,
		TokenTTL:     c.cfg.JWTTTL,
	})
	if err != nil {
		return nil, err
	}

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateCustomer:        c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:        c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:        c.CreateDeleteCustomerCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		UpdateProduct:         c.CreateUpdateProductCommandHandler(),
		DeleteProduct:         c.CreateDeleteProductCommandHandler(),
		CreateDriver:          c.CreateCreateDriverCommandHandler(),
		UpdateDriver:          c.CreateUpdateDriverCommandHandler(),
		DeleteDriver:          c.CreateDeleteDriverCommandHandler(),
		CreateDelivery:        c.CreateCreateDeliveryCommandHandler(),
		UpdateDelivery:        c.CreateUpdateDeliveryCommandHandler(),
		DeleteDelivery:        c.CreateDeleteDeliveryCommandHandler(),
		MarkDeliveryInTransit: c.CreateMarkDeliveryInTransitCommandHandler(),
		CancelDelivery:        c.CreateCancelDeliveryCommandHandler(),
		MarkDeliveryDelivered: c.CreateMarkDeliveryDeliveredCommandHandler(),

		GetCustomerAddress: c.CreateGetCustomerAddressQueryHandler(),
		ListCustomers:      c.CreateListCustomersQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		ListDrivers:        c.CreateListDriversQueryHandler(),
		ListDeliveries:     c.CreateListDeliveriesQueryHandler(),
		GetDelivery:        c.CreateGetDeliveryQueryHandler(),
		ListPayments:       c.CreateListPaymentsQueryHandler(),
	}, auth, c.logger)

	return httpin.NewEcho(server, doc, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueDeliveriesQueryHandler(), c.cfg.OverdueCron, c.logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
