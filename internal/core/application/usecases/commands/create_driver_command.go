package commands

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrUpdateDriverCommandIsNotConstructed = errors.New(
		"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
	)
)

// CreateDriverCommand registers a driver who can be assigned to deliveries.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand(kernel.NewUUID(), "Carlos Motorista", "11988880001", "Caminhão Baú 001")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create driver: %w", err)
//	}
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    string
	vehicle  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// Validates that the id is valid and that name, phone and vehicle are present.
func NewCreateDriverCommand(driverID kernel.UUID, name, phone, vehicle string) (CreateDriverCommand, error) {
	if err := validateDriverFields(driverID, name, phone, vehicle); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		driverID: driverID,
		name:     name,
		phone:    phone,
		vehicle:  vehicle,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier the new driver is stored under.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// Vehicle returns the vehicle description, e.g. "Caminhão Baú 001".
func (c CreateDriverCommand) Vehicle() string {
	return c.vehicle
}

// UpdateDriverCommand replaces name, phone and vehicle of an existing driver.
// Assigned deliveries are not touched.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    string
	vehicle  string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to edit a driver.
// Validates that the id is valid and that name, phone and vehicle are present.
func NewUpdateDriverCommand(driverID kernel.UUID, name, phone, vehicle string) (UpdateDriverCommand, error) {
	if err := validateDriverFields(driverID, name, phone, vehicle); err != nil {
		return UpdateDriverCommand{}, err
	}

	return UpdateDriverCommand{
		driverID: driverID,
		name:     name,
		phone:    phone,
		vehicle:  vehicle,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverCommandIsNotConstructed if validation fails.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the driver to edit.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the new driver name.
func (c UpdateDriverCommand) Name() string {
	return c.name
}

// Phone returns the new contact phone.
func (c UpdateDriverCommand) Phone() string {
	return c.phone
}

// Vehicle returns the new vehicle description.
func (c UpdateDriverCommand) Vehicle() string {
	return c.vehicle
}

// DeleteDriverCommand removes a driver; its deliveries become unassigned.
type DeleteDriverCommand struct {
	driverID kernel.UUID
}

// NewDeleteDriverCommand returns an error when driverID was not constructed.
func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}
	return DeleteDriverCommand{driverID: driverID}, nil
}

// DriverID returns the driver to delete.
func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func validateDriverFields(driverID kernel.UUID, name, phone, vehicle string) error {
	return errors.Join(
		driverID.Validate(),
		required("name", name),
		required("phone", phone),
		required("vehicle", vehicle),
	)
}
