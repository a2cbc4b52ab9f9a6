package driver

import (
	"errors"
	"strings"
	"unicode/utf8"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"
)

const (
	maxNameLength    = 255
	maxPhoneLength   = 20
	maxVehicleLength = 100
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver carries deliveries. Name, phone and vehicle are all required.
type Driver struct {
	id      kernel.UUID
	name    string
	phone   string
	vehicle string

	isConstructed bool
}

func NewDriver(id kernel.UUID, name, phone, vehicle string) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		setText(&d.name, "name", name, maxNameLength),
		setText(&d.phone, "phone", phone, maxPhoneLength),
		setText(&d.vehicle, "vehicle", vehicle, maxVehicleLength),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func RestoreDriver(id kernel.UUID, name, phone, vehicle string) (*Driver, error) {
	return NewDriver(id, name, phone, vehicle)
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Phone() string   { return d.phone }
func (d *Driver) Vehicle() string { return d.vehicle }

// Edit replaces name, phone and vehicle at once. Nothing changes when any value is invalid.
func (d *Driver) Edit(name, phone, vehicle string) error {
	edited := *d
	if err := errors.Join(
		setText(&edited.name, "name", name, maxNameLength),
		setText(&edited.phone, "phone", phone, maxPhoneLength),
		setText(&edited.vehicle, "vehicle", vehicle, maxVehicleLength),
	); err != nil {
		return err
	}

	*d = edited
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func setText(dst *string, param, value string, maxLength int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxLength)
	}
	*dst = value
	return nil
}
