// Package commands contains the operations that modify the order store.
// All commands follow the same pattern: a validated command value built by its
// constructor, and a handler that loads, mutates and saves the aggregate.
package commands

import (
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// MarkerSync keeps map markers in line with order locations.
// services.MarkerRegistry implements it; handlers that remove an order or change
// its location must cascade through it.
type MarkerSync interface {
	// Sync creates, moves or removes the marker of o to match its location.
	Sync(o *order.Order)

	// Remove drops the marker of the order, if any.
	Remove(id kernel.UUID)
}
