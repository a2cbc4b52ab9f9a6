package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

const (
	maxNameLength  = 255
	maxPhoneLength = 20
	maxEmailLength = 254
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
	ErrEmailIsAlreadyRegistered = errors.New("email is already registered to another customer")
)

// Customer is the aggregate root for a delivery recipient. Its address is the default
// delivery address of every new delivery.
type Customer struct {
	id           kernel.UUID
	name         string
	address      string
	phone        string
	email        string
	registeredAt time.Time

	isConstructed bool
}

// NewCustomer registers a customer at registeredAt.
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Maria Silva", "Rua das Flores, 123",
//	    "11999990001", "maria@example.com", time.Now())
func NewCustomer(id kernel.UUID, name, address, phone, email string, registeredAt time.Time) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(address),
		c.setPhone(phone),
		c.setEmail(email),
		c.setRegisteredAt(registeredAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(id kernel.UUID, name, address, phone, email string, registeredAt time.Time) (*Customer, error) {
	return NewCustomer(id, name, address, phone, email, registeredAt)
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) Name() string            { return c.name }
func (c *Customer) Address() string         { return c.address }
func (c *Customer) Phone() string           { return c.phone }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) RegisteredAt() time.Time { return c.registeredAt }

// Edit replaces the contact fields at once. Nothing changes when any value is invalid.
// The registration time is kept. Callers check that a new email is not taken.
func (c *Customer) Edit(name, address, phone, email string) error {
	edited := *c
	if err := errors.Join(
		edited.setName(name),
		edited.setAddress(address),
		edited.setPhone(phone),
		edited.setEmail(email),
	); err != nil {
		return err
	}

	*c = edited
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", utf8.RuneCountInString(name), 1, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if utf8.RuneCountInString(phone) > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", utf8.RuneCountInString(phone), 1, maxPhoneLength)
	}
	c.phone = phone
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > maxEmailLength {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 1, maxEmailLength)
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = strings.ToLower(email)
	return nil
}

func (c *Customer) setRegisteredAt(registeredAt time.Time) error {
	if registeredAt.IsZero() {
		return errs.NewValueIsRequiredError("registeredAt")
	}
	c.registeredAt = registeredAt
	return nil
}
