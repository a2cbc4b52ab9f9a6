package commands

import (
	"context"
	"strings"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
)

// CreateDeliveryCommandHandler places PENDING deliveries. The customer, the driver and
// every product must exist.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      Clock
}

// NewCreateDeliveryCommandHandler creates a handler stamping the order time with clock.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock Clock) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns errs.ErrObjectNotFound when the customer, the driver or a product does not exist.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if cmd.DriverID() != nil {
		if _, err = uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return err
		}
	}

	products := uow.ProductRepository()
	items := make([]delivery.LineItem, 0, len(cmd.LineItems()))
	for _, in := range cmd.LineItems() {
		if _, err = products.Get(ctx, in.ProductID); err != nil {
			return err
		}
		li, liErr := delivery.NewLineItem(kernel.NewUUID(), in.ProductID, in.Quantity)
		if liErr != nil {
			return liErr
		}
		items = append(items, li)
	}

	address := cmd.Address()
	if strings.TrimSpace(address) == "" {
		address = c.Address()
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(), c.ID(), cmd.DriverID(),
		h.clock.now(), cmd.ExpectedDeliveryAt(),
		address, items,
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
