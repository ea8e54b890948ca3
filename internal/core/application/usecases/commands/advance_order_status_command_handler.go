package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

type AdvanceOrderStatusCommandHandler struct {
	repo ports.OrderRepository
}

func NewAdvanceOrderStatusCommandHandler(repo ports.OrderRepository) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		repo: repo,
	}
}

func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.AdvanceStatus()

	return h.repo.Update(ctx, o)
}
