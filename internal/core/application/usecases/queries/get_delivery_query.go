package queries

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery reads one delivery with its line items and payment.
//
// Example:
//
//	query, err := NewGetDeliveryQuery(deliveryID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery id: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery returns errs.ErrValueIsRequired when deliveryID was not constructed.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}
	return GetDeliveryQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryQueryIsNotConstructed if validation fails.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// GetDeliveryQueryResponse is the detail view of a delivery. Payment is nil until completion.
type GetDeliveryQueryResponse struct {
	ID                 kernel.UUID            `json:"id"`
	CustomerID         kernel.UUID            `json:"customer_id"`
	CustomerName       string                 `json:"customer_name"`
	DriverID           *kernel.UUID           `json:"driver_id"`
	DriverName         string                 `json:"driver_name"`
	OrderedAt          time.Time              `json:"ordered_at"`
	ExpectedDeliveryAt time.Time              `json:"expected_delivery_at"`
	Status             string                 `json:"status"`
	StatusLabel        string                 `json:"status_label"`
	Address            string                 `json:"address"`
	LineItems          []DeliveryLineItemView `json:"line_items"`
	Total              kernel.Money           `json:"total"`
	Payment            *DeliveryPaymentView   `json:"payment"`
}

// DeliveryLineItemView prices a line item at the product's current unit price.
type DeliveryLineItemView struct {
	ProductID   kernel.UUID  `json:"product_id"`
	ProductName string       `json:"product_name"`
	UnitPrice   kernel.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	Subtotal    kernel.Money `json:"subtotal"`
}

type DeliveryPaymentView struct {
	ID          kernel.UUID  `json:"id"`
	Amount      kernel.Money `json:"amount"`
	Method      string       `json:"method"`
	MethodLabel string       `json:"method_label"`
	Status      string       `json:"status"`
	StatusLabel string       `json:"status_label"`
	PaidAt      *time.Time   `json:"paid_at"`
}
