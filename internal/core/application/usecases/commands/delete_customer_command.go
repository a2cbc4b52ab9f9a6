package commands

import (
	"distributor/internal/core/domain/model/kernel"
)

// DeleteCustomerCommand removes a customer and, by cascade, its deliveries.
type DeleteCustomerCommand struct {
	customerID kernel.UUID
}

// NewDeleteCustomerCommand returns an error when customerID was not constructed.
func NewDeleteCustomerCommand(customerID kernel.UUID) (DeleteCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeleteCustomerCommand{}, err
	}
	return DeleteCustomerCommand{customerID: customerID}, nil
}

// CustomerID returns the customer to delete.
func (c DeleteCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}
