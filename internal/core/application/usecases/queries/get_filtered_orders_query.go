// Package queries contains the read operations of the order store.
// Queries never mutate orders and always return them in store order.
package queries

import (
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrGetFilteredOrdersQueryIsNotConstructed = errors.New(
		"GetFilteredOrdersQuery must be created via NewGetFilteredOrdersQuery constructor",
	)
)

// GetFilteredOrdersQuery retrieves the orders matching a status filter.
//
// Example:
//
//	filter, _ := order.ParseFilter("Delivering")
//	query := NewGetFilteredOrdersQuery(filter)
//	handler := NewGetFilteredOrdersQueryHandler(repo)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetFilteredOrdersQuery struct {
	filter order.Filter

	guard guard.ConstructorGuard
}

// NewGetFilteredOrdersQuery creates a query for the given filter.
// order.FilterAll() selects every order.
func NewGetFilteredOrdersQuery(filter order.Filter) GetFilteredOrdersQuery {
	return GetFilteredOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFilteredOrdersQueryIsNotConstructed if validation fails.
func (q GetFilteredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetFilteredOrdersQueryIsNotConstructed)
}

// Filter returns the status filter of the query.
func (q GetFilteredOrdersQuery) Filter() order.Filter {
	return q.filter
}
