// Package services provides domain services that orchestrate business operations
// across several aggregates of the distributor.
//
// The package includes:
//   - DeliveryCompleter: checks and decrements stock for every line item of a delivery,
//     marks it delivered, totals it and creates or reconciles its payment
//
// Services are pure: they mutate the aggregates they are handed and never touch storage.
// Persisting the outcome atomically is the caller's job.
package services
