package queries

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// PaymentFilter narrows the payments screen. Zero fields do not filter.
type PaymentFilter struct {
	Status *payment.Status
	// Search matches the delivery id text or the customer name.
	Search string
	// ExpectedFrom and ExpectedTo bound the delivery's expected date, both inclusive.
	ExpectedFrom *time.Time
	ExpectedTo   *time.Time
}

// ListPaymentsQuery lists payments. Unpaid ones come first, then the rest by paid-at, latest first.
//
// Example:
//
//	pending := payment.Pending
//	query, err := NewListPaymentsQuery(PaymentFilter{Status: &pending, Search: "silva"})
//	if err != nil {
//	    return fmt.Errorf("invalid payment filter: %w", err)
//	}
//
//	rows, err := handler.Handle(ctx, query)
type ListPaymentsQuery struct {
	filter PaymentFilter

	guard guard.ConstructorGuard
}

// NewListPaymentsQuery creates a query over the payments matching filter.
// Validates the status and returns errs.ErrValueIsOutOfRange when ExpectedTo is before ExpectedFrom.
func NewListPaymentsQuery(filter PaymentFilter) (ListPaymentsQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListPaymentsQuery{}, err
		}
	}
	if filter.ExpectedFrom != nil && filter.ExpectedTo != nil && filter.ExpectedTo.Before(*filter.ExpectedFrom) {
		return ListPaymentsQuery{}, errs.NewValueIsOutOfRangeError(
			"expected_to", filter.ExpectedTo.Format(time.RFC3339), filter.ExpectedFrom.Format(time.RFC3339), "+inf")
	}
	return ListPaymentsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListPaymentsQueryIsNotConstructed if validation fails.
func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

type ListPaymentsQueryResponse struct {
	ID                 kernel.UUID  `json:"id"`
	DeliveryID         kernel.UUID  `json:"delivery_id"`
	CustomerName       string       `json:"customer_name"`
	ExpectedDeliveryAt time.Time    `json:"expected_delivery_at"`
	Amount             kernel.Money `json:"amount"`
	AmountLabel        string       `json:"amount_label"`
	Method             string       `json:"method"`
	MethodLabel        string       `json:"method_label"`
	Status             string       `json:"status"`
	StatusLabel        string       `json:"status_label"`
	PaidAt             *time.Time   `json:"paid_at"`
}
