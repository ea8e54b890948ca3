package http

import (
	"ordertracker/internal/adapters/out/leaflet"
	"ordertracker/internal/core/application/widget"
)

// Event types accepted by POST /api/v1/events.
const (
	EventListAction    = "list_action"
	EventFilter        = "filter"
	EventOpenAdd       = "open_add"
	EventCancel        = "cancel"
	EventSubmit        = "submit"
	EventMapClick      = "map_click"
	EventMarkerDrag    = "marker_drag"
	EventClearLocation = "clear_location"
)

// EventRequest is a user interaction reported by the browser.
type EventRequest struct {
	Type      string       `json:"type" validate:"required,oneof=list_action filter open_add cancel submit map_click marker_drag clear_location"`
	Action    string       `json:"action" validate:"omitempty,oneof=select edit status delete"`
	OrderID   string       `json:"orderId" validate:"omitempty,uuid"`
	MarkerKey string       `json:"markerKey" validate:"omitempty,max=64"`
	Filter    string       `json:"filter" validate:"omitempty,max=32"`
	Lat       *float64     `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng       *float64     `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Form      *FormRequest `json:"form"`
}

// FormRequest carries the dialog fields of a submit event.
type FormRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Customer string `json:"customer" validate:"max=200"`
	Status   string `json:"status" validate:"max=32"`
	Note     string `json:"note" validate:"max=2000"`
}

// StateResponse is returned by GET /api/v1/state and by every event.
type StateResponse struct {
	Widget   widget.State     `json:"widget"`
	ListHTML string           `json:"listHtml"`
	Map      leaflet.Snapshot `json:"map"`
	Statuses []string         `json:"statuses"`
	Accepted *bool            `json:"accepted,omitempty"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
