package services

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// DragEndHandler receives the final position of a dragged order marker.
type DragEndHandler func(ctx context.Context, orderID kernel.UUID, at kernel.Location) error

// MarkerRegistry maps order IDs to the markers drawn for them.
//
// Invariants:
//   - At most one marker exists per order ID
//   - A marker exists only while its order has a location
//   - The marker key is the order ID string, so map events resolve back to the order
//
// Example usage:
//
//	registry := services.NewMarkerRegistry(scene)
//	registry.OnDragEnd(func(ctx context.Context, id kernel.UUID, at kernel.Location) error {
//	    // write the position back into the store and re-render
//	    return nil
//	})
//	registry.Ensure(o)      // draws the marker if o has a location
//	registry.Remove(o.ID()) // after deleting o
type MarkerRegistry struct {
	view      ports.MapView
	markers   map[kernel.UUID]ports.Marker
	onDragEnd DragEndHandler
}

// NewMarkerRegistry creates an empty registry drawing on view.
func NewMarkerRegistry(view ports.MapView) *MarkerRegistry {
	return &MarkerRegistry{
		view:    view,
		markers: make(map[kernel.UUID]ports.Marker),
	}
}

// OnDragEnd sets the handler that every marker created afterwards, and every
// existing one, reports its drag-end to. It is resolved at event time.
func (r *MarkerRegistry) OnDragEnd(handler DragEndHandler) {
	r.onDragEnd = handler
}

// Ensure returns the marker for o, creating a draggable one at o's location if
// none exists yet. An existing marker is returned unchanged. Orders without a
// location have no marker and Ensure returns false.
func (r *MarkerRegistry) Ensure(o *order.Order) (ports.Marker, bool) {
	at, ok := o.Location()
	if !ok {
		return nil, false
	}

	id := o.ID()
	if marker, exists := r.markers[id]; exists {
		return marker, true
	}

	marker := r.view.AddMarker(id.String(), at, true)
	marker.OnDragEnd(func(ctx context.Context, dropped kernel.Location) error {
		if r.onDragEnd == nil {
			return nil
		}
		return r.onDragEnd(ctx, id, dropped)
	})
	r.markers[id] = marker
	return marker, true
}

// Sync brings the marker of o in line with its location: it is removed when o
// has no location, and created or moved to the location otherwise.
func (r *MarkerRegistry) Sync(o *order.Order) {
	at, ok := o.Location()
	if !ok {
		r.Remove(o.ID())
		return
	}

	marker, _ := r.Ensure(o)
	if !marker.LatLng().IsEqual(at) {
		marker.SetLatLng(at)
	}
}

// Remove detaches the marker of the given order from the map and forgets it.
// It is a no-op when the order has no marker.
func (r *MarkerRegistry) Remove(id kernel.UUID) {
	marker, ok := r.markers[id]
	if !ok {
		return
	}

	r.view.RemoveMarker(marker)
	delete(r.markers, id)
}

// Get returns the marker registered for the order, if any.
func (r *MarkerRegistry) Get(id kernel.UUID) (ports.Marker, bool) {
	marker, ok := r.markers[id]
	return marker, ok
}

// Len returns the number of registered markers.
func (r *MarkerRegistry) Len() int {
	return len(r.markers)
}
