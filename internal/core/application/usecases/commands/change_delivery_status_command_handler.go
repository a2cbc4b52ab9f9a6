package commands

import (
	"context"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
)

// MarkDeliveryInTransitCommandHandler writes the IN_TRANSIT status and nothing else.
type MarkDeliveryInTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewMarkDeliveryInTransitCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveryInTransitCommandHandler {
	return MarkDeliveryInTransitCommandHandler{uowFactory: uowFactory}
}

// Handle returns the operator message on success.
func (h *MarkDeliveryInTransitCommandHandler) Handle(ctx context.Context, cmd MarkDeliveryInTransitCommand) (string, error) {
	if err := changeStatus(ctx, h.uowFactory, cmd.DeliveryID(), (*delivery.Delivery).MarkInTransit); err != nil {
		return "", err
	}
	return MessageMarkedInTransit, nil
}

// CancelDeliveryCommandHandler writes the CANCELLED status and nothing else.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle returns the operator message on success.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) (string, error) {
	if err := changeStatus(ctx, h.uowFactory, cmd.DeliveryID(), (*delivery.Delivery).Cancel); err != nil {
		return "", err
	}
	return MessageCancelled, nil
}

func changeStatus(
	ctx context.Context,
	uowFactory DeliveryUoWFactory,
	deliveryID kernel.UUID,
	transition func(*delivery.Delivery),
) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.GetForUpdate(ctx, deliveryID)
	if err != nil {
		return err
	}

	transition(d)

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
