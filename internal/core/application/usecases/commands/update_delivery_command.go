package commands

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand edits the driver, the expected time and the address of a delivery.
// The address is the delivery's own copy: editing it never changes the customer.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryCommand(deliveryID, &driverID, time.Now().Add(3*time.Hour),
//	    "Av. Brasil, 500 - fundos")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewUpdateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update delivery: %w", err)
//	}
//
// A nil driverID unassigns the delivery. Status changes go through the delivery actions.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID         kernel.UUID
	driverID           *kernel.UUID
	expectedDeliveryAt time.Time
	address            string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to edit a delivery.
// Validates the ids, that the expected time is set and that the address is present.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	driverID *kernel.UUID,
	expectedDeliveryAt time.Time,
	address string,
) (UpdateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		validateDriverID(driverID),
		validateExpectedAt(expectedDeliveryAt),
		required("address", address),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		deliveryID:         deliveryID,
		driverID:           copyUUID(driverID),
		expectedDeliveryAt: expectedDeliveryAt,
		address:            address,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to edit.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the driver to assign, or nil to leave the delivery unassigned.
func (c UpdateDeliveryCommand) DriverID() *kernel.UUID {
	return copyUUID(c.driverID)
}

// ExpectedDeliveryAt returns the new expected delivery time.
func (c UpdateDeliveryCommand) ExpectedDeliveryAt() time.Time {
	return c.expectedDeliveryAt
}

// Address returns the new delivery address.
func (c UpdateDeliveryCommand) Address() string {
	return c.address
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
