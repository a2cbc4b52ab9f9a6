// Package kernel provides the value objects shared by every aggregate of the
// distributor domain.
//
// The package includes:
//   - UUID: identifier of customers, products, drivers, deliveries, line items and payments
//   - Money: exact two-decimal currency amount backed by shopspring/decimal
//
// Zero values of both types are invalid and fail Validate.
package kernel
