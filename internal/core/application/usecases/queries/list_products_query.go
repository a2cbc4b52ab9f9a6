package queries

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the catalogue. search matches name and description; sort accepts
// "name", "price", "stock" and "created_at" with an optional "-" prefix.
type ListProductsQuery struct {
	search string
	sort   string

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query; unknown sort keys fall back to name ascending.
func NewListProductsQuery(search, sort string) ListProductsQuery {
	return ListProductsQuery{search: search, sort: sort, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListProductsQueryIsNotConstructed if validation fails.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ListProductsQueryResponse struct {
	ID                 kernel.UUID  `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	DescriptionSummary string       `json:"description_summary"`
	Price              kernel.Money `json:"price"`
	PriceLabel         string       `json:"price_label"`
	Stock              int          `json:"stock"`
	CreatedAt          time.Time    `json:"created_at"`
}
