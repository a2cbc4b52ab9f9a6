package commands

import (
	"distributor/internal/core/domain/model/kernel"
)

// DeleteProductCommand removes a product from the catalogue. The line items that
// reference it are deleted with it; their deliveries and payments stay.
type DeleteProductCommand struct {
	productID kernel.UUID
}

// NewDeleteProductCommand returns an error when productID was not constructed.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID}, nil
}

// ProductID returns the product to delete.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}
