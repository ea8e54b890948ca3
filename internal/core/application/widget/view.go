package widget

import (
	"fmt"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

const (
	EmptyListText  = "No matching orders."
	EmptyNoteText  = "-"
	NoLocationText = "not set"

	cardCoordinateDecimals = 3
)

// ActionKind is the per-card button a list event came from.
type ActionKind string

const (
	ActionSelect ActionKind = "select"
	ActionEdit   ActionKind = "edit"
	ActionStatus ActionKind = "status"
	ActionDelete ActionKind = "delete"
)

var cardActions = []struct {
	kind  ActionKind
	label string
}{
	{ActionSelect, "Locate"},
	{ActionEdit, "Edit"},
	{ActionStatus, "Next status"},
	{ActionDelete, "Delete"},
}

// ParseActionKind accepts the four card action names.
func ParseActionKind(raw string) (ActionKind, error) {
	for _, a := range cardActions {
		if string(a.kind) == raw {
			return a.kind, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown action %q", raw))
}

// ListView is the rendered order list. Exactly one of Placeholder and Cards
// is non-empty.
type ListView struct {
	Placeholder string     `json:"placeholder,omitempty"`
	Cards       []CardView `json:"cards"`
}

// IsEmpty reports whether the list shows the placeholder.
func (v ListView) IsEmpty() bool {
	return len(v.Cards) == 0
}

// CardView is one order card.
type CardView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Customer string       `json:"customer"`
	Status   string       `json:"status"`
	Note     string       `json:"note"`
	HasNote  bool         `json:"hasNote"`
	Location string       `json:"location"`
	Active   bool         `json:"active"`
	Actions  []ActionView `json:"actions"`
}

type ActionView struct {
	Kind    ActionKind `json:"kind"`
	Label   string     `json:"label"`
	OrderID string     `json:"orderId"`
}

// RenderList builds the list for the orders matching filter, in store order.
// The card whose order ID equals activeID is marked active; the zero UUID
// marks none.
func RenderList(orders []*order.Order, filter order.Filter, activeID kernel.UUID) ListView {
	visible := filter.Apply(orders)
	if len(visible) == 0 {
		return ListView{Placeholder: EmptyListText, Cards: []CardView{}}
	}

	cards := make([]CardView, 0, len(visible))
	for _, o := range visible {
		cards = append(cards, renderCard(o, o.ID().IsEqual(activeID)))
	}
	return ListView{Cards: cards}
}

func renderCard(o *order.Order, active bool) CardView {
	id := o.ID().String()

	card := CardView{
		ID:       id,
		Name:     o.Name(),
		Customer: o.Customer(),
		Status:   o.Status().String(),
		Note:     EmptyNoteText,
		Location: NoLocationText,
		Active:   active,
		Actions:  make([]ActionView, 0, len(cardActions)),
	}
	if note := o.Note(); note != "" {
		card.Note = note
		card.HasNote = true
	}
	if at, ok := o.Location(); ok {
		card.Location = at.Format(cardCoordinateDecimals)
	}
	for _, a := range cardActions {
		card.Actions = append(card.Actions, ActionView{Kind: a.kind, Label: a.label, OrderID: id})
	}

	return card
}
