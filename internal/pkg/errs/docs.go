// Package errs holds the typed errors shared by the domain, the use cases and the adapters.
//
// Every type unwraps to a package sentinel, so callers test the category with errors.Is and
// read the details with errors.As:
//   - ObjectNotFoundError -> ErrObjectNotFound
//   - ValueIsInvalidError -> ErrValueIsInvalid
//   - ValueIsOutOfRangeError -> ErrValueIsOutOfRange
//   - ValueIsRequiredError -> ErrValueIsRequired
//
// The HTTP adapter answers ErrObjectNotFound with 404 and the value errors with 400.
package errs
