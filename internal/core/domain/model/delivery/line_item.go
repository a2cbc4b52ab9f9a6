package delivery

import (
	"fmt"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

// LineItem is one product and quantity on a delivery. It is immutable once created.
type LineItem struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
}

func NewLineItem(id, productID kernel.UUID, quantity int) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	if err := productID.Validate(); err != nil {
		return LineItem{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return LineItem{id: id, productID: productID, quantity: quantity}, nil
}

func (li LineItem) ID() kernel.UUID        { return li.id }
func (li LineItem) ProductID() kernel.UUID { return li.productID }
func (li LineItem) Quantity() int          { return li.quantity }
