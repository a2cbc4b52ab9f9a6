package queries

import (
	"errors"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery lists drivers by name. search matches name, phone and vehicle.
type ListDriversQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewListDriversQuery creates a query; an empty search lists every driver.
func NewListDriversQuery(search string) ListDriversQuery {
	return ListDriversQuery{search: search, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDriversQueryIsNotConstructed if validation fails.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

type ListDriversQueryResponse struct {
	ID      kernel.UUID `json:"id"`
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Vehicle string      `json:"vehicle"`
}
