// Package delivery provides the Delivery aggregate and its line items.
//
// A delivery belongs to one customer, may be carried by one driver, and lists one or more
// products with a quantity each. Its status walks the lifecycle:
//
//	Pending ──> InTransit ──┬──> Delivered
//	   │            │       │
//	   └────────────┴───────┴──> Cancelled
//
// The operator screens are permissive: MarkInTransit and Cancel are accepted from any state,
// and MarkDelivered may be applied again to an already delivered delivery. Stock and payment
// side effects of completion live in services.DeliveryCompleter.
package delivery
