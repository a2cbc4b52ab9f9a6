// Package product provides the Product aggregate: the water jugs and gas cylinders the
// distributor sells, with their unit price and the stock on hand.
//
// Key business rules:
//   - Name is required and description is free text
//   - Price is a non-negative two-decimal amount
//   - Stock never goes below zero; a decrement larger than the stock on hand fails
//     with InsufficientStockError and leaves the stock untouched
package product
