package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
)

// LocationHandler reacts to a coordinate reported by the map: a click on the
// map surface or the final position of a dragged marker.
type LocationHandler func(ctx context.Context, at kernel.Location) error

// TileLayer describes a raster tile source shown beneath the markers.
type TileLayer struct {
	// URLTemplate uses the {s}, {z}, {x} and {y} placeholders.
	URLTemplate string
	Attribution string
	MaxZoom     int
}

// MapView is the interactive map the widget draws on. Any mapping component
// that can center itself, show tiles, manage draggable markers and report
// clicks and drags can stand behind it.
type MapView interface {
	// AddTileLayer adds a tile layer with its attribution.
	AddTileLayer(layer TileLayer)

	// SetView centers the map on center at the given zoom.
	SetView(center kernel.Location, zoom int, animate bool)

	// AddMarker places a marker identified by key at the given position.
	AddMarker(key string, at kernel.Location, draggable bool) Marker

	// RemoveMarker detaches the marker from the map. Unknown markers are ignored.
	RemoveMarker(marker Marker)

	// OnClick registers a handler invoked for every click on the map surface.
	OnClick(handler LocationHandler)
}

// Marker is a handle to a marker placed through MapView.AddMarker.
type Marker interface {
	// Key returns the identifier the marker was added with.
	Key() string

	// LatLng returns the current marker position.
	LatLng() kernel.Location

	// SetLatLng moves the marker.
	SetLatLng(at kernel.Location)

	// OnDragEnd registers a handler invoked when the user drops the marker.
	OnDragEnd(handler LocationHandler)
}
