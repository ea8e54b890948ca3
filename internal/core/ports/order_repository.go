// Package ports defines the contracts between the order tracker core and its
// collaborators: the order store and the interactive map.
package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository is the order store: an ordered collection that exclusively
// owns every Order. Lookups by an identifier that no longer resolves return
// an errs.ObjectNotFoundError.
type OrderRepository interface {
	// Prepend inserts a new order at the front of the collection.
	// The order must be valid and its ID must not already be stored.
	Prepend(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order without moving it.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order with the given ID.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every order in collection order (most recently added first).
	List(ctx context.Context) ([]*order.Order, error)
}
