package leaflet

import "ordertracker/internal/core/domain/model/kernel"

// Snapshot is the JSON form of a Scene consumed by the browser.
type Snapshot struct {
	View    ViewSnapshot     `json:"view"`
	Tiles   []TileSnapshot   `json:"tiles"`
	Markers []MarkerSnapshot `json:"markers"`
}

// ViewSnapshot is the current view. The browser calls setView only when
// Revision differs from the last one it applied.
type ViewSnapshot struct {
	Center   LatLng `json:"center"`
	Zoom     int    `json:"zoom"`
	Animate  bool   `json:"animate"`
	Revision uint64 `json:"revision"`
}

type TileSnapshot struct {
	URLTemplate string `json:"urlTemplate"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

type MarkerSnapshot struct {
	Key       string `json:"key"`
	Position  LatLng `json:"position"`
	Draggable bool   `json:"draggable"`
}

// LatLng mirrors Leaflet's L.LatLng literal.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toLatLng(l kernel.Location) LatLng {
	return LatLng{Lat: l.Lat(), Lng: l.Lng()}
}
