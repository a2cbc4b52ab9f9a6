// Package driver provides the Driver aggregate: a person who carries deliveries in a vehicle.
// A delivery may exist without a driver; removing a driver leaves its deliveries unassigned.
package driver
