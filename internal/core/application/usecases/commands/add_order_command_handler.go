package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// AddOrderCommandHandler creates orders and inserts them at the front of the store.
type AddOrderCommandHandler struct {
	repo ports.OrderRepository
}

// NewAddOrderCommandHandler creates a handler for the add flow.
func NewAddOrderCommandHandler(repo ports.OrderRepository) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		repo: repo,
	}
}

// Handle builds the order (no location) and prepends it to the store.
func (h *AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Name(), cmd.Customer(), cmd.Status(), cmd.Note())
	if err != nil {
		return err
	}

	return h.repo.Prepend(ctx, o)
}
