package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetFilteredOrdersQueryHandler lists the store and applies the status filter.
type GetFilteredOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetFilteredOrdersQueryHandler creates a handler reading from repo.
func NewGetFilteredOrdersQueryHandler(repo ports.OrderRepository) GetFilteredOrdersQueryHandler {
	return GetFilteredOrdersQueryHandler{repo: repo}
}

// Handle returns the matching orders in store order. The result is never nil.
func (h GetFilteredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetFilteredOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return query.Filter().Apply(orders), nil
}
