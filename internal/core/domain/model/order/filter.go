package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// FilterAllValue is the filter control value that matches every order.
const FilterAllValue = "all"

// Filter narrows a list of orders to "all" or to exactly one status.
// The zero value is the "all" filter.
type Filter struct {
	status Status
}

// FilterAll returns the filter that matches every order.
func FilterAll() Filter {
	return Filter{}
}

// FilterByStatus returns a filter matching only orders in status s.
func FilterByStatus(s Status) (Filter, error) {
	if err := s.Validate(); err != nil {
		return Filter{}, err
	}
	return Filter{status: s}, nil
}

// ParseFilter accepts FilterAllValue or a status display name.
func ParseFilter(raw string) (Filter, error) {
	if raw == FilterAllValue {
		return FilterAll(), nil
	}
	s, err := ParseStatus(raw)
	if err != nil {
		return Filter{}, errs.NewValueIsInvalidErrorWithCause(
			"filter",
			fmt.Errorf("%q is neither %q nor a status", raw, FilterAllValue),
		)
	}
	return Filter{status: s}, nil
}

// IsAll reports whether the filter matches every order.
func (f Filter) IsAll() bool {
	return f.status == Unknown
}

// Status returns the status the filter selects and false for the "all" filter.
func (f Filter) Status() (Status, bool) {
	return f.status, !f.IsAll()
}

// String returns the control value of the filter.
func (f Filter) String() string {
	if f.IsAll() {
		return FilterAllValue
	}
	return f.status.String()
}

// Matches reports whether o passes the filter.
func (f Filter) Matches(o *Order) bool {
	return f.IsAll() || o.Status() == f.status
}

// Apply returns the orders that pass the filter, preserving their order.
// The result is never nil.
func (f Filter) Apply(orders []*Order) []*Order {
	filtered := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
