package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

// RemoveOrderCommandHandler deletes orders and cascades to the marker registry.
//
// Example:
//
//	handler := NewRemoveOrderCommandHandler(repo, registry)
//	cmd, _ := NewRemoveOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // already gone, nothing to do
//	}
type RemoveOrderCommandHandler struct {
	repo    ports.OrderRepository
	markers MarkerSync
}

func NewRemoveOrderCommandHandler(repo ports.OrderRepository, markers MarkerSync) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		repo:    repo,
		markers: markers,
	}
}

// Handle deletes the order and then drops its marker. The marker is left in
// place if the store refuses the delete.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	h.markers.Remove(cmd.OrderID())
	return nil
}
