// Package leaflet implements ports.MapView as a server-side scene that a
// Leaflet map in the browser mirrors. The scene is the source of truth for the
// view and the markers; the browser reports clicks and drags back through
// Click and DragEnd and redraws from Snapshot.
package leaflet

import (
	"context"
	"slices"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/pkg/errs"
)

var _ ports.MapView = (*Scene)(nil)

// Scene holds the map state. It is not safe for concurrent use; callers
// serialize access the same way they serialize widget events.
type Scene struct {
	center   kernel.Location
	zoom     int
	animate  bool
	revision uint64

	tiles   []ports.TileLayer
	markers []*Marker
	onClick []ports.LocationHandler
}

// NewScene creates the map at center and zoom.
func NewScene(center kernel.Location, zoom int) (*Scene, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if zoom < 0 {
		return nil, errs.NewValueIsInvalidError("zoom")
	}

	return &Scene{
		center:   center,
		zoom:     zoom,
		revision: 1,
	}, nil
}

func (s *Scene) AddTileLayer(layer ports.TileLayer) {
	s.tiles = append(s.tiles, layer)
}

// SetView recenters the map. Every call bumps the view revision so the browser
// re-applies the view even when it equals the previous one.
func (s *Scene) SetView(center kernel.Location, zoom int, animate bool) {
	s.center = center
	s.zoom = zoom
	s.animate = animate
	s.revision++
}

// AddMarker places a marker. Adding a key that is already on the map replaces
// the previous marker.
func (s *Scene) AddMarker(key string, at kernel.Location, draggable bool) ports.Marker {
	s.markers = slices.DeleteFunc(s.markers, func(m *Marker) bool { return m.key == key })

	marker := &Marker{key: key, at: at, draggable: draggable}
	s.markers = append(s.markers, marker)
	return marker
}

func (s *Scene) RemoveMarker(marker ports.Marker) {
	if marker == nil {
		return
	}
	s.markers = slices.DeleteFunc(s.markers, func(m *Marker) bool { return m == marker })
}

func (s *Scene) OnClick(handler ports.LocationHandler) {
	s.onClick = append(s.onClick, handler)
}

// Click dispatches a map click reported by the browser to every click handler.
// Dispatch stops at the first handler error.
func (s *Scene) Click(ctx context.Context, at kernel.Location) error {
	for _, handler := range s.onClick {
		if err := handler(ctx, at); err != nil {
			return err
		}
	}
	return nil
}

// DragEnd records the position a marker was dropped at and notifies its
// drag-end handler. An unknown key yields errs.ErrObjectNotFound; this happens
// when the browser drags a marker the scene already removed.
func (s *Scene) DragEnd(ctx context.Context, key string, at kernel.Location) error {
	marker, ok := s.Marker(key)
	if !ok {
		return errs.NewObjectNotFoundError("markerKey", key)
	}

	marker.at = at
	if marker.onDragEnd == nil {
		return nil
	}
	return marker.onDragEnd(ctx, at)
}

// Marker returns the marker with the given key.
func (s *Scene) Marker(key string) (*Marker, bool) {
	i := slices.IndexFunc(s.markers, func(m *Marker) bool { return m.key == key })
	if i < 0 {
		return nil, false
	}
	return s.markers[i], true
}

// Snapshot returns the serializable state of the scene.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		View: ViewSnapshot{
			Center:   toLatLng(s.center),
			Zoom:     s.zoom,
			Animate:  s.animate,
			Revision: s.revision,
		},
		Tiles:   make([]TileSnapshot, 0, len(s.tiles)),
		Markers: make([]MarkerSnapshot, 0, len(s.markers)),
	}

	for _, t := range s.tiles {
		snap.Tiles = append(snap.Tiles, TileSnapshot{
			URLTemplate: t.URLTemplate,
			Attribution: t.Attribution,
			MaxZoom:     t.MaxZoom,
		})
	}
	for _, m := range s.markers {
		snap.Markers = append(snap.Markers, MarkerSnapshot{
			Key:       m.key,
			Position:  toLatLng(m.at),
			Draggable: m.draggable,
		})
	}

	return snap
}

// Marker is a marker on a Scene.
type Marker struct {
	key       string
	at        kernel.Location
	draggable bool
	onDragEnd ports.LocationHandler
}

func (m *Marker) Key() string {
	return m.key
}

func (m *Marker) LatLng() kernel.Location {
	return m.at
}

func (m *Marker) SetLatLng(at kernel.Location) {
	m.at = at
}

func (m *Marker) OnDragEnd(handler ports.LocationHandler) {
	m.onDragEnd = handler
}

// Draggable reports whether the browser should let the user drag the marker.
func (m *Marker) Draggable() bool {
	return m.draggable
}
