package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
	ErrLineItemsAreRequired     = errors.New("delivery must have at least one line item")
	ErrDuplicateProduct         = errors.New("product appears in more than one line item")
)

// Delivery is the aggregate root of an order being carried to a customer.
type Delivery struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	driverID           *kernel.UUID
	orderedAt          time.Time
	expectedDeliveryAt time.Time
	status             Status
	address            string
	lineItems          []LineItem

	isConstructed bool
}

// NewDelivery places a PENDING delivery. address is the customer's address unless the
// operator typed a different one.
func NewDelivery(
	id, customerID kernel.UUID,
	driverID *kernel.UUID,
	orderedAt, expectedDeliveryAt time.Time,
	address string,
	lineItems []LineItem,
) (*Delivery, error) {
	if len(lineItems) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	return RestoreDelivery(id, customerID, driverID, orderedAt, expectedDeliveryAt, Pending, address, lineItems)
}

// RestoreDelivery rebuilds a delivery loaded from storage in any status. A stored delivery
// may have no line items left: deleting a product deletes the line items that referenced it.
func RestoreDelivery(
	id, customerID kernel.UUID,
	driverID *kernel.UUID,
	orderedAt, expectedDeliveryAt time.Time,
	status Status,
	address string,
	lineItems []LineItem,
) (*Delivery, error) {
	d := &Delivery{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.SetDriver(driverID),
		d.setSchedule(orderedAt, expectedDeliveryAt),
		d.setStatus(status),
		d.SetAddress(address),
		d.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the customer the delivery is carried to.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// OrderedAt returns when the delivery was placed. It never changes.
func (d *Delivery) OrderedAt() time.Time {
	return d.orderedAt
}

// ExpectedDeliveryAt returns when the customer expects the delivery.
func (d *Delivery) ExpectedDeliveryAt() time.Time {
	return d.expectedDeliveryAt
}

// Status returns the current workflow status.
func (d *Delivery) Status() Status {
	return d.status
}

// Address returns the delivery address, which may differ from the customer's.
func (d *Delivery) Address() string {
	return d.address
}

// DriverID returns nil when no driver is assigned.
func (d *Delivery) DriverID() *kernel.UUID {
	if d.driverID == nil {
		return nil
	}
	id := *d.driverID
	return &id
}

// LineItems returns a copy of the line items in creation order.
func (d *Delivery) LineItems() []LineItem {
	items := make([]LineItem, len(d.lineItems))
	copy(items, d.lineItems)
	return items
}

// ProductIDs returns the id of every product on the delivery.
func (d *Delivery) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(d.lineItems))
	for _, li := range d.lineItems {
		ids = append(ids, li.productID)
	}
	return ids
}

// MarkInTransit is accepted from any status.
func (d *Delivery) MarkInTransit() {
	d.status = InTransit
}

// Cancel is accepted from any status.
func (d *Delivery) Cancel() {
	d.status = Cancelled
}

// MarkDelivered records the final status. Callers must have checked and decremented stock.
func (d *Delivery) MarkDelivered() {
	d.status = Delivered
}

// IsOverdue reports whether an open delivery has passed its expected time.
func (d *Delivery) IsOverdue(now time.Time) bool {
	return d.status.IsOpen() && d.expectedDeliveryAt.Before(now)
}

// Edit replaces the driver, the expected time and the address at once. Nothing changes
// when any value is invalid. Status, customer and line items are not editable.
func (d *Delivery) Edit(driverID *kernel.UUID, expectedDeliveryAt time.Time, address string) error {
	edited := *d
	if err := errors.Join(
		edited.SetDriver(driverID),
		edited.setSchedule(d.orderedAt, expectedDeliveryAt),
		edited.SetAddress(address),
	); err != nil {
		return err
	}

	*d = edited
	return nil
}

// SetDriver assigns a driver; nil leaves the delivery unassigned.
func (d *Delivery) SetDriver(driverID *kernel.UUID) error {
	if driverID == nil {
		d.driverID = nil
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	id := *driverID
	d.driverID = &id
	return nil
}

// SetAddress replaces the delivery address without touching the customer's.
func (d *Delivery) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setSchedule(orderedAt, expectedDeliveryAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	if expectedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryAt")
	}
	d.orderedAt = orderedAt
	d.expectedDeliveryAt = expectedDeliveryAt
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setLineItems(lineItems []LineItem) error {
	seen := make(map[kernel.UUID]struct{}, len(lineItems))
	for i, li := range lineItems {
		if li.quantity <= 0 || li.productID.Validate() != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"lineItems", fmt.Errorf("line item %d was not created via NewLineItem", i))
		}
		if _, ok := seen[li.productID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProduct, li.productID)
		}
		seen[li.productID] = struct{}{}
	}

	d.lineItems = make([]LineItem, len(lineItems))
	copy(d.lineItems, lineItems)
	return nil
}
