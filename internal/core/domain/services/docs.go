// Package services provides domain services that coordinate the Order aggregate
// with the map collaborator.
//
// The package includes:
//   - MarkerRegistry: keeps exactly one draggable map marker per geolocated order
//
// The registry holds only order IDs, never Order references, so it cannot keep a
// deleted order alive; every deletion or location clear must go through Remove.
package services
