// Package customer provides the Customer aggregate: the people and businesses the
// distributor delivers water and gas to.
//
// Key business rules:
//   - Name, address, phone and email are required
//   - Email must be a well-formed address and is unique across customers (enforced by storage)
//   - The registration timestamp is set once, at creation
//   - Deleting a customer removes all of their deliveries
package customer
