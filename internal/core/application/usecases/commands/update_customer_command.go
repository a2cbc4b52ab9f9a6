package commands

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces the contact fields of a registered customer.
// The registration time never changes and the email must stay unique.
//
// Example:
//
//	cmd, err := NewUpdateCustomerCommand(customerID, "Maria Souza", "Av. Paulista, 1000",
//	    "11999990009", "maria.souza@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewUpdateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update customer: %w", err)
//	}
//
// Deliveries placed before the edit keep the address they were placed with.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	phone      string
	email      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to edit a customer.
// Validates that the id is valid and that every field is present; length and email
// format rules are enforced by customer.Customer.Edit.
func NewUpdateCustomerCommand(customerID kernel.UUID, name, address, phone, email string) (UpdateCustomerCommand, error) {
	if err := errors.Join(
		customerID.Validate(),
		required("name", name),
		required("address", address),
		required("phone", phone),
		required("email", email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		name:       name,
		address:    address,
		phone:      phone,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCustomerCommandIsNotConstructed if validation fails.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer to edit.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new customer name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Address returns the new default delivery address.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

// Phone returns the new contact phone.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// Email returns the new email, compared case-insensitively.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}
