package order

import (
	"errors"
	"strings"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order tracked by the widget. It is the aggregate root
// owned exclusively by the order store; the marker registry only keeps its ID.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, fixed at creation
//   - Name and customer are never blank (they are stored trimmed)
//   - Status is always one of Pending, Processing, Delivering, Complete
//   - Location is either absent or a fully constructed kernel.Location
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// name is the display label of the order
	name string

	// customer is the name of the customer the order is delivered to
	customer string

	// status is the current position in the status cycle
	status Status

	// note is an optional free-text annotation
	note string

	// location is the delivery coordinate (nil until geolocated)
	location *kernel.Location

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with no location.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - name, customer: Labels that must not be blank after trimming
//   - status: Initial status (the add dialog defaults to Pending)
//   - note: Optional annotation, stored trimmed
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Order #003", "Mr. Zhao", order.Pending, "")
//	if err != nil {
//	    // Blank name or customer, or invalid status
//	}
func NewOrder(id kernel.UUID, name, customer string, status Status, note string) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(name, customer, status, note),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from stored state, including its location.
// Used by repositories and the seed loader.
func RestoreOrder(
	id kernel.UUID,
	name, customer string,
	status Status,
	note string,
	location *kernel.Location,
) (*Order, error) {
	o, err := NewOrder(id, name, customer, status, note)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err = o.SetLocation(*location); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Name returns the order's display label.
func (o *Order) Name() string {
	return o.name
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Note returns the annotation, empty when none was given.
func (o *Order) Note() string {
	return o.note
}

// Location returns the delivery coordinate and whether one is set.
func (o *Order) Location() (kernel.Location, bool) {
	if o.location == nil {
		return kernel.Location{}, false
	}
	return *o.location, true
}

// HasLocation reports whether the order has been geolocated.
func (o *Order) HasLocation() bool {
	return o.location != nil
}

// Edit overwrites name, customer, status and note. The location is untouched.
// On validation failure the order is left unchanged.
func (o *Order) Edit(name, customer string, status Status, note string) error {
	edited := *o
	if err := edited.setDetails(name, customer, status, note); err != nil {
		return err
	}

	o.name, o.customer, o.status, o.note = edited.name, edited.customer, edited.status, edited.note
	return nil
}

// AdvanceStatus moves the order to the next status in the cycle.
func (o *Order) AdvanceStatus() {
	o.status = o.status.Next()
}

// SetLocation sets or replaces the delivery coordinate.
func (o *Order) SetLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	o.location = &location
	return nil
}

// ClearLocation removes the delivery coordinate. Clearing an absent location is a no-op.
func (o *Order) ClearLocation() {
	o.location = nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setDetails validates and sets every editable field at once.
func (o *Order) setDetails(name, customer string, status Status, note string) error {
	name = strings.TrimSpace(name)
	customer = strings.TrimSpace(customer)

	var nameErr, customerErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if customer == "" {
		customerErr = errs.NewValueIsRequiredError("customer")
	}

	if err := errors.Join(nameErr, customerErr, status.Validate()); err != nil {
		return err
	}

	o.name = name
	o.customer = customer
	o.status = status
	o.note = strings.TrimSpace(note)
	return nil
}
