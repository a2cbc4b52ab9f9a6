package payment

import (
	"errors"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment settles one delivery.
type Payment struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	amount     kernel.Money
	method     Method
	status     Status
	paidAt     *time.Time

	isConstructed bool
}

// NewPayment records the settlement of a completed delivery and applies the payment policy.
func NewPayment(id, deliveryID kernel.UUID, amount kernel.Money, method Method, now time.Time) (*Payment, error) {
	p := &Payment{isConstructed: true}

	if err := errors.Join(p.setID(id), p.setDeliveryID(deliveryID)); err != nil {
		return nil, err
	}
	if err := p.Reconcile(amount, method, now); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment rebuilds a payment loaded from storage.
func RestorePayment(
	id, deliveryID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	paidAt *time.Time,
) (*Payment, error) {
	p := &Payment{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setDeliveryID(deliveryID),
		amount.Validate(),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.amount = amount
	p.method = method
	p.status = status
	p.paidAt = copyTime(paidAt)

	return p, nil
}

// Reconcile overwrites amount, method, status and paid-at after a (re-)completion.
// Deferred methods leave the payment Pending with no paid-at; any other method is Paid at now.
func (p *Payment) Reconcile(amount kernel.Money, method Method, now time.Time) error {
	if err := errors.Join(amount.Validate(), method.Validate()); err != nil {
		return err
	}
	if !method.IsDeferred() && now.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}

	p.amount = amount
	p.method = method
	if method.IsDeferred() {
		p.status = Pending
		p.paidAt = nil
		return nil
	}
	p.status = Paid
	p.paidAt = &now
	return nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID         { return p.id }
func (p *Payment) DeliveryID() kernel.UUID { return p.deliveryID }
func (p *Payment) Amount() kernel.Money    { return p.amount }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) PaidAt() *time.Time      { return copyTime(p.paidAt) }

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}
	p.deliveryID = deliveryID
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
