package widget

import (
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// DialogMode tells whether a submission creates or edits an order.
type DialogMode int

const (
	DialogAdd DialogMode = iota
	DialogEdit
)

func (m DialogMode) String() string {
	if m == DialogEdit {
		return "edit"
	}
	return "add"
}

// DialogFields holds the form values as the user typed them.
type DialogFields struct {
	Name     string `json:"name"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Note     string `json:"note"`
}

// Dialog is the add/edit form controller. It is either closed or open in one
// of two modes; the editing ID is set only in edit mode.
type Dialog struct {
	open      bool
	mode      DialogMode
	editingID kernel.UUID
	fields    DialogFields
}

// OpenForAdd opens an empty form with the status preset to Pending.
func (d *Dialog) OpenForAdd() {
	d.open = true
	d.mode = DialogAdd
	d.editingID = kernel.UUID{}
	d.fields = DialogFields{Status: order.Pending.String()}
}

// OpenForEdit opens the form prefilled with o.
func (d *Dialog) OpenForEdit(o *order.Order) {
	d.open = true
	d.mode = DialogEdit
	d.editingID = o.ID()
	d.fields = DialogFields{
		Name:     o.Name(),
		Customer: o.Customer(),
		Status:   o.Status().String(),
		Note:     o.Note(),
	}
}

// Cancel closes the form and discards its values.
func (d *Dialog) Cancel() {
	*d = Dialog{}
}

func (d *Dialog) IsOpen() bool {
	return d.open
}

func (d *Dialog) Mode() DialogMode {
	return d.mode
}

// EditingID returns the order being edited, false outside edit mode.
func (d *Dialog) EditingID() (kernel.UUID, bool) {
	if !d.open || d.mode != DialogEdit {
		return kernel.UUID{}, false
	}
	return d.editingID, true
}

func (d *Dialog) Fields() DialogFields {
	return d.fields
}

// Title is the heading shown above the form.
func (d *Dialog) Title() string {
	if d.mode == DialogEdit {
		return "Edit order"
	}
	return "New order"
}

func (d *Dialog) keep(fields DialogFields) {
	d.fields = fields
}
