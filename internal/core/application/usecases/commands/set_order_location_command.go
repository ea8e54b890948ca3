package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrSetOrderLocationCommandIsNotConstructed = errors.New(
		"SetOrderLocationCommand must be created via NewSetOrderLocationCommand or NewClearOrderLocationCommand",
	)
)

// SetOrderLocationCommand sets or clears the delivery coordinate of an order.
// A command without a location clears it.
//
// Example:
//
//	at, _ := kernel.NewLocation(31.2304, 121.4737)
//	set, _ := NewSetOrderLocationCommand(orderID, at)
//	clear, _ := NewClearOrderLocationCommand(orderID)
type SetOrderLocationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	location *kernel.Location

	guard guard.ConstructorGuard
}

// NewSetOrderLocationCommand creates a command placing the order at location.
func NewSetOrderLocationCommand(orderID kernel.UUID, location kernel.Location) (SetOrderLocationCommand, error) {
	if err := errors.Join(orderID.Validate(), location.Validate()); err != nil {
		return SetOrderLocationCommand{}, err
	}

	return SetOrderLocationCommand{
		orderID:  orderID,
		location: &location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewClearOrderLocationCommand creates a command removing the order's location.
func NewClearOrderLocationCommand(orderID kernel.UUID) (SetOrderLocationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetOrderLocationCommand{}, err
	}

	return SetOrderLocationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderLocationCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderLocationCommandIsNotConstructed)
}

func (c SetOrderLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Location returns the target coordinate, or false when the command clears it.
func (c SetOrderLocationCommand) Location() (kernel.Location, bool) {
	if c.location == nil {
		return kernel.Location{}, false
	}
	return *c.location, true
}
