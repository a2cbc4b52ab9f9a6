package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

const maxNameLength = 255

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	ErrInsufficientStock       = errors.New("insufficient stock")
)

// InsufficientStockError names the product that cannot cover a line item and the shortfall.
type InsufficientStockError struct {
	ProductID   kernel.UUID
	ProductName string
	Available   int
	Required    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s for product %q: available %d, required %d",
		ErrInsufficientStock, e.ProductName, e.Available, e.Required)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is a sellable item with a unit price and stock count.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a product with an initial stock.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, stock int, createdAt time.Time) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	p.description = strings.TrimSpace(description)

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(id kernel.UUID, name, description string, price kernel.Money, stock int, createdAt time.Time) (*Product, error) {
	return NewProduct(id, name, description, price, stock, createdAt)
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID      { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() kernel.Money  { return p.price }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// Edit replaces the editable fields at once. Nothing changes when any value is invalid.
func (p *Product) Edit(name, description string, price kernel.Money, stock int) error {
	edited := *p
	if err := errors.Join(
		edited.setName(name),
		edited.setPrice(price),
		edited.setStock(stock),
	); err != nil {
		return err
	}
	edited.description = strings.TrimSpace(description)

	*p = edited
	return nil
}

// CheckStock reports an InsufficientStockError when quantity exceeds the stock on hand.
func (p *Product) CheckStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return &InsufficientStockError{
			ProductID:   p.id,
			ProductName: p.name,
			Available:   p.stock,
			Required:    quantity,
		}
	}
	return nil
}

// DecreaseStock removes quantity units from stock.
func (p *Product) DecreaseStock(quantity int) error {
	if err := p.CheckStock(quantity); err != nil {
		return err
	}
	p.stock -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", utf8.RuneCountInString(name), 1, maxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
