package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrAddOrderCommandIsNotConstructed = errors.New(
		"AddOrderCommand must be created via NewAddOrderCommand constructor",
	)
)

// AddOrderCommand represents a request to put a new order at the front of the store.
// The new order has no location.
//
// Example:
//
//	cmd, err := NewAddOrderCommand(kernel.NewUUID(), "Order #003", "Mr. Zhao", order.Pending, "")
//	if err != nil {
//	    // blank name or customer: the submission is rejected
//	}
//
//	handler := NewAddOrderCommandHandler(repo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add order: %w", err)
//	}
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	name     string
	customer string
	status   order.Status
	note     string

	guard guard.ConstructorGuard
}

// NewAddOrderCommand validates the payload of the add flow. Name and customer
// are trimmed and must not be blank; status must be one of the four statuses.
func NewAddOrderCommand(
	orderID kernel.UUID,
	name, customer string,
	status order.Status,
	note string,
) (AddOrderCommand, error) {
	cmd := AddOrderCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
		cmd.setCustomer(customer),
		cmd.setStatus(status),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c AddOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the trimmed order label.
func (c AddOrderCommand) Name() string {
	return c.name
}

// Customer returns the trimmed customer name.
func (c AddOrderCommand) Customer() string {
	return c.customer
}

// Status returns the initial status.
func (c AddOrderCommand) Status() order.Status {
	return c.status
}

// Note returns the trimmed note.
func (c AddOrderCommand) Note() string {
	return c.note
}

func (c *AddOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddOrderCommand) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = customer
	return nil
}

func (c *AddOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
