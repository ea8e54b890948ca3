package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Status represents the delivery progress of an order.
// Statuses form a fixed cycle that the status action walks through:
//
//	Pending ──> Processing ──> Delivering ──> Complete
//	   ^                                         │
//	   └─────────────────────────────────────────┘
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the default status of a newly added order.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Delivering indicates the order is on its way.
	Delivering

	// Complete indicates the order has been delivered. Advancing wraps back to Pending.
	Complete
)

// cycle lists the valid statuses in advancement order.
var cycle = [...]Status{Pending, Processing, Delivering, Complete}

// getStatusStrings returns the display name of every status, Unknown included.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Delivering: "Delivering",
		Complete:   "Complete",
	}
}

// AllStatuses returns the valid statuses in cycle order.
// The filter control and the dialog's status field offer exactly these values.
func AllStatuses() []Status {
	statuses := make([]Status, len(cycle))
	copy(statuses, cycle[:])
	return statuses
}

// ParseStatus maps a display name ("Pending", "Processing", ...) to its Status.
// Matching is exact; anything else is a ValueIsInvalidError.
func ParseStatus(raw string) (Status, error) {
	for _, s := range cycle {
		if s.String() == raw {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks if the Status value is one of the four valid statuses.
func (s Status) Validate() error {
	for _, valid := range cycle {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
}

// String returns the display name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the status that follows s in the cycle, wrapping from Complete to Pending.
// A status outside the cycle advances to Pending.
//
// Example:
//
//	order.Pending.Next()  // Processing
//	order.Complete.Next() // Pending
func (s Status) Next() Status {
	for i, current := range cycle {
		if current == s {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
