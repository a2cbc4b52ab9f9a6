package queries

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// CustomerFilter narrows the customers screen. Zero fields do not filter.
type CustomerFilter struct {
	// Search matches name, phone, email and address case-insensitively.
	Search string
	// Sort is one of "name", "email" or "registered_at", prefixed with "-" for descending
	// order. Anything else sorts by name ascending.
	Sort string
	// RegisteredFrom and RegisteredTo bound the registration time, both inclusive.
	RegisteredFrom *time.Time
	RegisteredTo   *time.Time
}

// ListCustomersQuery lists customers for the admin screen.
//
// Example:
//
//	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
//	query, err := NewListCustomersQuery(CustomerFilter{
//	    Search:         "silva",
//	    Sort:           "-registered_at",
//	    RegisteredFrom: &from,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid customer filter: %w", err)
//	}
//
//	rows, err := handler.Handle(ctx, query)
type ListCustomersQuery struct {
	filter CustomerFilter

	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a query over the customers matching filter.
// Returns errs.ErrValueIsOutOfRange when RegisteredTo is before RegisteredFrom.
func NewListCustomersQuery(filter CustomerFilter) (ListCustomersQuery, error) {
	if filter.RegisteredFrom != nil && filter.RegisteredTo != nil && filter.RegisteredTo.Before(*filter.RegisteredFrom) {
		return ListCustomersQuery{}, errs.NewValueIsOutOfRangeError(
			"registered_to", filter.RegisteredTo.Format(time.RFC3339), filter.RegisteredFrom.Format(time.RFC3339), "+inf")
	}
	return ListCustomersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCustomersQueryIsNotConstructed if validation fails.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// Filter returns a copy of the filter the query was built with.
func (q ListCustomersQuery) Filter() CustomerFilter {
	return q.filter
}

type ListCustomersQueryResponse struct {
	ID             kernel.UUID `json:"id"`
	Name           string      `json:"name"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	Address        string      `json:"address"`
	AddressSummary string      `json:"address_summary"`
	RegisteredAt   time.Time   `json:"registered_at"`
}
