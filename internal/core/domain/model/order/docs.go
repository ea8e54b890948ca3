// Package order provides the Order aggregate of the order tracker together with
// its status cycle and the list filter.
//
// The package includes:
//   - Order: the aggregate root holding identity, labels, status, note and an optional location
//   - Status: the fixed enumeration Pending, Processing, Delivering, Complete
//   - Filter: "all" or a single status, used to narrow the rendered list
//
// Key business rules:
//   - Orders have a valid identifier and a non-blank name and customer
//   - Status advances cyclically: Pending -> Processing -> Delivering -> Complete -> Pending
//   - A location is either fully set (latitude and longitude) or absent
//   - Editing an order never touches its location
package order
