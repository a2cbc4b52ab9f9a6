// Package payment provides the Payment aggregate, the one-to-one settlement record of a
// delivered delivery.
//
// Payment policy: a delivery paid on store credit ("fiado") stays Pending with no paid-at
// time; every other method is Paid at the moment of completion. A payment is only ever
// created or reconciled by the delivery completion workflow.
package payment
