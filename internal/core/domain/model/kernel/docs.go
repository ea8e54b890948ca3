// Package kernel provides the shared value objects of the order tracker domain.
//
// The package includes:
//   - UUID: an immutable order identifier wrapping github.com/google/uuid
//   - Location: a validated geographic coordinate pair (latitude, longitude)
//
// Both types are immutable and are only valid when created through their
// constructors; the zero value fails Validate.
package kernel
