package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

// SetOrderLocationCommandHandler writes a location change to the store and
// brings the order's marker in line with it: the marker is created or moved
// when a location is set, and removed when it is cleared.
type SetOrderLocationCommandHandler struct {
	repo    ports.OrderRepository
	markers MarkerSync
}

func NewSetOrderLocationCommandHandler(repo ports.OrderRepository, markers MarkerSync) SetOrderLocationCommandHandler {
	return SetOrderLocationCommandHandler{
		repo:    repo,
		markers: markers,
	}
}

func (h *SetOrderLocationCommandHandler) Handle(ctx context.Context, cmd SetOrderLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if at, ok := cmd.Location(); ok {
		if err = o.SetLocation(at); err != nil {
			return err
		}
	} else {
		o.ClearLocation()
	}

	if err = h.repo.Update(ctx, o); err != nil {
		return err
	}

	h.markers.Sync(o)
	return nil
}
