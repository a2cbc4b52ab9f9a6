package queries

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrGetCustomerAddressQueryIsNotConstructed = errors.New(
	"GetCustomerAddressQuery must be created via NewGetCustomerAddressQuery constructor",
)

// GetCustomerAddressQuery looks up the address to prefill a new delivery with.
type GetCustomerAddressQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerAddressQuery returns errs.ErrValueIsRequired when customerID was not constructed.
func NewGetCustomerAddressQuery(customerID kernel.UUID) (GetCustomerAddressQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerAddressQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	return GetCustomerAddressQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerAddressQueryIsNotConstructed if validation fails.
func (q GetCustomerAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerAddressQueryIsNotConstructed)
}

// CustomerID returns the customer whose address is read.
func (q GetCustomerAddressQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerAddressQueryResponse holds the address, empty when the customer does not exist.
type GetCustomerAddressQueryResponse struct {
	Address string `json:"endereco"`
}
