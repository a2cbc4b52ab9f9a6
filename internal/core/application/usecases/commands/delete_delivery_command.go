package commands

import (
	"distributor/internal/core/domain/model/kernel"
)

// DeleteDeliveryCommand removes a delivery together with its line items and payment.
// Stock decremented by an earlier completion is not given back.
type DeleteDeliveryCommand struct {
	deliveryID kernel.UUID
}

// NewDeleteDeliveryCommand returns an error when deliveryID was not constructed.
func NewDeleteDeliveryCommand(deliveryID kernel.UUID) (DeleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return DeleteDeliveryCommand{}, err
	}
	return DeleteDeliveryCommand{deliveryID: deliveryID}, nil
}

// DeliveryID returns the delivery to delete.
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
