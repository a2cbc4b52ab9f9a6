package commands

import (
	"errors"
	"fmt"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// LineItemInput is one requested product and quantity.
type LineItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateDeliveryCommand places a delivery for a customer.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(kernel.NewUUID(), customerID, nil,
//	    time.Now().Add(2*time.Hour), "", []LineItemInput{{ProductID: waterID, Quantity: 2}})
//
// An empty address means the customer's address at the moment the delivery is placed.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID         kernel.UUID
	customerID         kernel.UUID
	driverID           *kernel.UUID
	expectedDeliveryAt time.Time
	address            string
	lineItems          []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to place a delivery.
// Validates the ids, that the expected time is set and that every line item has a
// positive quantity. Existence of the customer, driver and products is checked by the handler.
func NewCreateDeliveryCommand(
	deliveryID, customerID kernel.UUID,
	driverID *kernel.UUID,
	expectedDeliveryAt time.Time,
	address string,
	lineItems []LineItemInput,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		customerID.Validate(),
		validateDriverID(driverID),
		validateExpectedAt(expectedDeliveryAt),
		validateLineItems(lineItems),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	items := make([]LineItemInput, len(lineItems))
	copy(items, lineItems)

	return CreateDeliveryCommand{
		deliveryID:         deliveryID,
		customerID:         customerID,
		driverID:           driverID,
		expectedDeliveryAt: expectedDeliveryAt,
		address:            address,
		lineItems:          items,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the new delivery is stored under.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CustomerID returns the customer the delivery is carried to.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DriverID returns the assigned driver, or nil when none is assigned yet.
func (c CreateDeliveryCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// ExpectedDeliveryAt returns when the customer expects the delivery.
func (c CreateDeliveryCommand) ExpectedDeliveryAt() time.Time {
	return c.expectedDeliveryAt
}

// Address returns the typed address; empty means the customer's address.
func (c CreateDeliveryCommand) Address() string {
	return c.address
}

// LineItems returns the requested products and quantities in request order.
func (c CreateDeliveryCommand) LineItems() []LineItemInput {
	return c.lineItems
}

func validateDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	return driverID.Validate()
}

func validateExpectedAt(expectedDeliveryAt time.Time) error {
	if expectedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryAt")
	}
	return nil
}

func validateLineItems(lineItems []LineItemInput) error {
	if len(lineItems) == 0 {
		return delivery.ErrLineItemsAreRequired
	}
	for i, li := range lineItems {
		if li.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("line item %d: %d is not greater than 0", i, li.Quantity))
		}
	}
	return nil
}
