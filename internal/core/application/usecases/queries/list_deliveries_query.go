package queries

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery lists deliveries, newest order first, optionally restricted to one status.
type ListDeliveriesQuery struct {
	status *delivery.Status

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery accepts a nil status for no filter.
func NewListDeliveriesQuery(status *delivery.Status) (ListDeliveriesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListDeliveriesQuery{}, err
		}
		s := *status
		status = &s
	}
	return ListDeliveriesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDeliveriesQueryIsNotConstructed if validation fails.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// ListDeliveriesQueryResponse is one row of the deliveries screen. Products and Quantities
// are comma separated in line item order; the payment columns read "-" until the delivery
// has been completed.
type ListDeliveriesQueryResponse struct {
	ID                 kernel.UUID     `json:"id"`
	CustomerID         kernel.UUID     `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	DriverName         string          `json:"driver_name"`
	OrderedAt          time.Time       `json:"ordered_at"`
	ExpectedDeliveryAt time.Time       `json:"expected_delivery_at"`
	Status             delivery.Status `json:"-"`
	StatusCode         string          `json:"status"`
	StatusLabel        string          `json:"status_label"`
	Address            string          `json:"address"`
	Products           string          `json:"products"`
	Quantities         string          `json:"quantities"`
	PaymentAmount      string          `json:"payment_amount"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentStatus      string          `json:"payment_status"`
	Delivered          bool            `json:"delivered"`
}
