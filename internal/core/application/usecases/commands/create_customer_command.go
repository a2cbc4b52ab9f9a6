package commands

import (
	"errors"
	"strings"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer. Field rules are enforced by customer.NewCustomer;
// the command only checks presence.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string
	phone      string
	email      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Validates that the id is valid and that every field is present.
func NewCreateCustomerCommand(customerID kernel.UUID, name, address, phone, email string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		customerID.Validate(),
		required("name", name),
		required("address", address),
		required("phone", phone),
		required("email", email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}
	cmd.customerID = customerID
	cmd.name = name
	cmd.address = address
	cmd.phone = phone
	cmd.email = email

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier the new customer is stored under.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Address returns the default delivery address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Phone returns the contact phone.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Email returns the email, unique across customers.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

func required(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
