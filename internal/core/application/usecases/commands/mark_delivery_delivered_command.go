package commands

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/pkg/guard"
)

var ErrMarkDeliveryDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveryDeliveredCommand must be created via NewMarkDeliveryDeliveredCommand constructor",
)

// MarkDeliveryDeliveredCommand completes a delivery with the payment method the operator chose.
type MarkDeliveryDeliveredCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	method     payment.Method

	guard guard.ConstructorGuard
}

// NewMarkDeliveryDeliveredCommand parses the method code. An empty code yields
// payment.ErrPaymentMethodIsRequired and an unknown one a value-is-invalid error.
func NewMarkDeliveryDeliveredCommand(deliveryID kernel.UUID, methodCode string) (MarkDeliveryDeliveredCommand, error) {
	method, err := payment.ParseMethod(methodCode)
	if err = errors.Join(deliveryID.Validate(), err); err != nil {
		return MarkDeliveryDeliveredCommand{}, err
	}

	return MarkDeliveryDeliveredCommand{
		deliveryID: deliveryID,
		method:     method,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDeliveryDeliveredCommandIsNotConstructed if validation fails.
func (c MarkDeliveryDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryDeliveredCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c MarkDeliveryDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Method returns the payment method the operator chose.
func (c MarkDeliveryDeliveredCommand) Method() payment.Method {
	return c.method
}
