package commands

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var ErrProductCommandIsNotConstructed = errors.New(
	"product command must be created via NewCreateProductCommand or NewUpdateProductCommand",
)

// ProductFields are the editable fields of a product.
type ProductFields struct {
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
}

func (f ProductFields) validate() error {
	return errors.Join(required("name", f.Name), f.Price.Validate())
}

// CreateProductCommand adds a product to the catalogue.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	fields    ProductFields

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product.
// Validates the id, that the name is present and that the price was constructed.
func NewCreateProductCommand(productID kernel.UUID, fields ProductFields) (CreateProductCommand, error) {
	if err := errors.Join(productID.Validate(), fields.validate()); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{productID: productID, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrProductCommandIsNotConstructed)
}

// ProductID returns the identifier the new product is stored under.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Fields returns name, description, price and initial stock.
func (c CreateProductCommand) Fields() ProductFields {
	return c.fields
}

// UpdateProductCommand replaces the editable fields of an existing product, stock included.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	fields    ProductFields

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a product.
// Applies the same checks as NewCreateProductCommand.
func NewUpdateProductCommand(productID kernel.UUID, fields ProductFields) (UpdateProductCommand, error) {
	if err := errors.Join(productID.Validate(), fields.validate()); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{productID: productID, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProductCommandIsNotConstructed if validation fails.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrProductCommandIsNotConstructed)
}

// ProductID returns the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Fields returns the replacement name, description, price and stock.
func (c UpdateProductCommand) Fields() ProductFields {
	return c.fields
}
