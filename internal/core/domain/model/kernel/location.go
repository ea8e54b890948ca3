package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

const (
	// MinLatitude is the southern bound of a valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northern bound of a valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the western bound of a valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the eastern bound of a valid longitude in degrees.
	MaxLongitude = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a geographic point with both coordinates populated.
// It is an immutable value object; a partial location cannot be represented.
// The zero value is invalid and fails Validate.
//
// Example:
//
//	loc, err := kernel.NewLocation(31.2304, 121.4737)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc.Format(3)) // Output: 31.230, 121.474
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from a latitude in [MinLatitude, MaxLatitude]
// and a longitude in [MinLongitude, MaxLongitude]. NaN and infinities are rejected.
// Both coordinates are checked and all violations are reported together.
func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// Format renders "lat, lng" with the given number of decimals.
func (l Location) Format(decimals int) string {
	return strconv.FormatFloat(l.lat, 'f', decimals, 64) + ", " +
		strconv.FormatFloat(l.lng, 'f', decimals, 64)
}

// String implements fmt.Stringer for logging.
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.lat, l.lng)
}

// IsEqual reports whether both locations hold the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.lat == other.lat && l.lng == other.lng
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}

	l.lng = lng
	return nil
}
