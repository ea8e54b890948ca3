package widget

// State is everything the presentation surface needs to draw the widget
// outside of the map.
type State struct {
	ActiveID         string      `json:"activeId,omitempty"`
	Filter           string      `json:"filter"`
	Hint             string      `json:"hint"`
	CanClearLocation bool        `json:"canClearLocation"`
	List             ListView    `json:"list"`
	Dialog           DialogState `json:"dialog"`
}

type DialogState struct {
	Open      bool         `json:"open"`
	Mode      string       `json:"mode"`
	Title     string       `json:"title"`
	EditingID string       `json:"editingId,omitempty"`
	Fields    DialogFields `json:"fields"`
}
