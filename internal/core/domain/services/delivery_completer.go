package services

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/core/domain/model/product"
	"distributor/internal/pkg/errs"
)

// ErrPaymentBelongsToAnotherDelivery is returned when the existing payment handed to
// Complete does not settle the delivery being completed.
var ErrPaymentBelongsToAnotherDelivery = errors.New("payment belongs to another delivery")

// Completion is the outcome of completing a delivery.
type Completion struct {
	// Total is the sum of unit price times quantity over every line item.
	Total kernel.Money
	// Payment is the created or reconciled payment.
	Payment *payment.Payment
	// PaymentCreated is false when an existing payment was updated in place.
	PaymentCreated bool
}

// DeliveryCompleter is a domain service that completes a delivery.
//
// Business rules:
//   - Every line item is checked against current stock before anything changes; one
//     shortfall rejects the whole completion with product.InsufficientStockError
//   - Stock of every product is decremented by its line item quantity
//   - The delivery becomes Delivered
//   - The total is exact decimal arithmetic over unit price times quantity
//   - An existing payment is reconciled in place, otherwise a new one is created
//
// Completing an already delivered delivery is allowed and decrements stock again.
//
// Example usage:
//
//	completer := NewDeliveryCompleter()
//	c, err := completer.Complete(d, products, existingPayment, payment.PIX, kernel.NewUUID(), time.Now())
//	var stockErr *product.InsufficientStockError
//	if errors.As(err, &stockErr) {
//	    // nothing was changed
//	}
type DeliveryCompleter struct{}

func NewDeliveryCompleter() DeliveryCompleter {
	return DeliveryCompleter{}
}

// Complete applies the completion to d, the products on its line items and the payment.
//
// Parameters:
//   - d: the delivery to complete
//   - products: every product referenced by d's line items, in any order
//   - existing: the delivery's current payment, or nil when it has none
//   - method: the payment method chosen by the operator
//   - newPaymentID: the id used when a payment has to be created
//   - now: the paid-at time for immediate methods
//
// On error none of the arguments have been modified.
func (DeliveryCompleter) Complete(
	d *delivery.Delivery,
	products []*product.Product,
	existing *payment.Payment,
	method payment.Method,
	newPaymentID kernel.UUID,
	now time.Time,
) (Completion, error) {
	if err := d.Validate(); err != nil {
		return Completion{}, err
	}
	if err := method.Validate(); err != nil {
		return Completion{}, err
	}
	if existing != nil && !existing.DeliveryID().IsEqual(d.ID()) {
		return Completion{}, ErrPaymentBelongsToAnotherDelivery
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return Completion{}, err
		}
		byID[p.ID()] = p
	}

	items := d.LineItems()
	total := kernel.ZeroMoney()
	for _, li := range items {
		p, ok := byID[li.ProductID()]
		if !ok {
			return Completion{}, errs.NewObjectNotFoundError("product", li.ProductID())
		}
		if err := p.CheckStock(li.Quantity()); err != nil {
			return Completion{}, err
		}
		total = total.Add(p.Price().Times(li.Quantity()))
	}
	if _, err := kernel.NewMoney(total.Decimal()); err != nil {
		return Completion{}, err
	}

	var (
		pay     = existing
		created = existing == nil
		err     error
	)
	if created {
		pay, err = payment.NewPayment(newPaymentID, d.ID(), total, method, now)
	} else {
		err = existing.Reconcile(total, method, now)
	}
	if err != nil {
		return Completion{}, err
	}

	for _, li := range items {
		if err = byID[li.ProductID()].DecreaseStock(li.Quantity()); err != nil {
			return Completion{}, err
		}
	}
	d.MarkDelivered()

	return Completion{Total: total, Payment: pay, PaymentCreated: created}, nil
}
