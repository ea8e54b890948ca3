// Package orderrepo provides the default order store: an ordered, in-memory
// collection that lives as long as the process.
package orderrepo

import (
	"context"
	"fmt"
	"slices"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository over a slice.
// Index 0 is the most recently added order. It is not safe for concurrent use;
// callers serialize access the same way they serialize UI events.
type MemoryOrderRepository struct {
	orders []*order.Order
}

// NewMemoryOrderRepository creates an empty store.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make([]*order.Order, 0)}
}

// Prepend inserts the order at the front of the collection.
func (r *MemoryOrderRepository) Prepend(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%s is already stored", aggregate.ID()))
	}

	r.orders = slices.Insert(r.orders, 0, aggregate)
	return nil
}

// Update replaces the stored order with the same ID, keeping its position.
func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	i := r.indexOf(aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.orders[i] = aggregate
	return nil
}

// Delete removes the order with the given ID.
func (r *MemoryOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	i := r.indexOf(id)
	if i < 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	r.orders = slices.Delete(r.orders, i, i+1)
	return nil
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	i := r.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return r.orders[i], nil
}

// List returns a copy of the collection in store order.
func (r *MemoryOrderRepository) List(_ context.Context) ([]*order.Order, error) {
	return slices.Clone(r.orders), nil
}

func (r *MemoryOrderRepository) indexOf(id kernel.UUID) int {
	return slices.IndexFunc(r.orders, func(o *order.Order) bool {
		return o.ID().IsEqual(id)
	})
}
