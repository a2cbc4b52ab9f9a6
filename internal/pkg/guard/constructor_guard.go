// Package guard holds the constructor guard embedded by value objects, entities and
// commands to tell a properly constructed value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct that embeds it and was
// created with a composite literal carries the zero guard and fails Validate.
//
// Example:
//
//	type LineItemInput struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (in LineItemInput) Validate() error {
//	    return in.guard.Validate(ErrLineItemInputIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil) if the
// guard is the zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
