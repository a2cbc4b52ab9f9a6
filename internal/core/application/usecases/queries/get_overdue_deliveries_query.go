package queries

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrGetOverdueDeliveriesQueryIsNotConstructed = errors.New(
	"GetOverdueDeliveriesQuery must be created via NewGetOverdueDeliveriesQuery constructor",
)

// GetOverdueDeliveriesQuery finds open deliveries (pending or in transit) whose expected
// time is before now.
type GetOverdueDeliveriesQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueDeliveriesQuery creates a query evaluated at now, which is required.
func NewGetOverdueDeliveriesQuery(now time.Time) (GetOverdueDeliveriesQuery, error) {
	if now.IsZero() {
		return GetOverdueDeliveriesQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetOverdueDeliveriesQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueDeliveriesQueryIsNotConstructed if validation fails.
func (q GetOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

type GetOverdueDeliveriesQueryResponse struct {
	ID                 kernel.UUID
	CustomerName       string
	DriverName         string
	Address            string
	Status             string
	ExpectedDeliveryAt time.Time
	// Overdue is how late the delivery was at the query's now.
	Overdue time.Duration
}
