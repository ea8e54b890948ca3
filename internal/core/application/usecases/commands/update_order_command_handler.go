package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

// UpdateOrderCommandHandler applies the edit flow to a stored order.
type UpdateOrderCommandHandler struct {
	repo ports.OrderRepository
}

func NewUpdateOrderCommandHandler(repo ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		repo: repo,
	}
}

// Handle loads the order, overwrites its fields and saves it in place.
// An unknown ID surfaces as errs.ErrObjectNotFound from the repository.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Edit(cmd.Name(), cmd.Customer(), cmd.Status(), cmd.Note()); err != nil {
		return err
	}

	return h.repo.Update(ctx, o)
}
