package commands

import (
	"context"
)

// UpdateDeliveryCommandHandler edits deliveries. The delivery row is locked so that an edit
// cannot interleave with a status action or a completion on the same delivery.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler that opens one unit of work per command.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the delivery or the driver does not exist.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	repo := uow.DeliveryRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if cmd.DriverID() != nil {
		if _, err = uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return err
		}
	}

	if err = d.Edit(cmd.DriverID(), cmd.ExpectedDeliveryAt(), cmd.Address()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
