package commands

import (
	"distributor/internal/core/domain/model/kernel"
)

// Operator messages of the status actions.
const (
	MessageMarkedInTransit = "Status alterado para Em Trânsito."
	MessageCancelled       = "Entrega cancelada."
)

// MarkDeliveryInTransitCommand moves a delivery to IN_TRANSIT from any status.
type MarkDeliveryInTransitCommand struct {
	deliveryID kernel.UUID
}

// NewMarkDeliveryInTransitCommand returns an error when deliveryID was not constructed.
func NewMarkDeliveryInTransitCommand(deliveryID kernel.UUID) (MarkDeliveryInTransitCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return MarkDeliveryInTransitCommand{}, err
	}
	return MarkDeliveryInTransitCommand{deliveryID: deliveryID}, nil
}

// DeliveryID returns the delivery to move to IN_TRANSIT.
func (c MarkDeliveryInTransitCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CancelDeliveryCommand moves a delivery to CANCELLED from any status. Stock and payment
// are left as they are.
type CancelDeliveryCommand struct {
	deliveryID kernel.UUID
}

// NewCancelDeliveryCommand returns an error when deliveryID was not constructed.
func NewCancelDeliveryCommand(deliveryID kernel.UUID) (CancelDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}
	return CancelDeliveryCommand{deliveryID: deliveryID}, nil
}

// DeliveryID returns the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
