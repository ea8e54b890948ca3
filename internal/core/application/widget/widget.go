// Package widget is the order tracker's presentation core. It owns the UI
// state (selection, filter, dialog, map hint) and routes user events from the
// list, the dialog and the map to the order store handlers, re-rendering the
// list after every change.
//
// A Widget is not safe for concurrent use. The host must deliver events one at
// a time, including the map events it forwards through the MapView adapter.
package widget

import (
	"context"
	"errors"
	"fmt"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/pkg/errs"

	"github.com/rs/zerolog"
)

const (
	DefaultFocusZoom = 11

	HintNoSelection = "Select an order to locate it."
	HintNoLocation  = "This order has no location yet. Click the map to set delivery coordinates."

	hintCoordinateDecimals = 4
)

// Handlers are the store operations the widget drives.
type Handlers struct {
	AddOrder       commands.AddOrderCommandHandler
	UpdateOrder    commands.UpdateOrderCommandHandler
	AdvanceStatus  commands.AdvanceOrderStatusCommandHandler
	RemoveOrder    commands.RemoveOrderCommandHandler
	SetLocation    commands.SetOrderLocationCommandHandler
	FilteredOrders queries.GetFilteredOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
}

// Settings tune the map behaviour of the widget.
type Settings struct {
	// FocusZoom is the zoom level used when centering on a selected order.
	FocusZoom int
}

// FormPayload is a dialog submission as typed by the user.
type FormPayload struct {
	Name     string
	Customer string
	Status   string
	Note     string
}

// Widget routes events and keeps the rendered state.
//
// Example:
//
//	w := widget.New(handlers, scene, registry, widget.Settings{FocusZoom: 11}, logger)
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	_ = w.HandleListAction(ctx, widget.ActionStatus, orderID)
//	state := w.State()
type Widget struct {
	handlers Handlers
	view     ports.MapView
	markers  *services.MarkerRegistry
	settings Settings
	logger   zerolog.Logger
	newID    func() kernel.UUID

	activeID kernel.UUID
	filter   order.Filter
	dialog   Dialog
	list     ListView
	hint     string
	canClear bool
}

// New wires the widget to the map: clicks on view and drags of markers
// created by the registry are routed back into the widget.
func New(
	handlers Handlers,
	view ports.MapView,
	markers *services.MarkerRegistry,
	settings Settings,
	logger zerolog.Logger,
) *Widget {
	if settings.FocusZoom <= 0 {
		settings.FocusZoom = DefaultFocusZoom
	}

	w := &Widget{
		handlers: handlers,
		view:     view,
		markers:  markers,
		settings: settings,
		logger:   logger,
		newID:    kernel.NewUUID,
		filter:   order.FilterAll(),
		hint:     HintNoSelection,
		list:     ListView{Placeholder: EmptyListText, Cards: []CardView{}},
	}

	view.OnClick(w.onMapClick)
	markers.OnDragEnd(w.onMarkerDragEnd)

	return w
}

// Start selects the first order, renders the list and focuses the map on it.
func (w *Widget) Start(ctx context.Context) error {
	orders, err := w.allOrders(ctx)
	if err != nil {
		return err
	}

	w.activeID = kernel.UUID{}
	if len(orders) > 0 {
		w.activeID = orders[0].ID()
	}

	if err = w.render(ctx); err != nil {
		return err
	}
	return w.focusActive(ctx)
}

// HandleListAction reacts to a card button. Actions on an order that no longer
// exists are ignored.
func (w *Widget) HandleListAction(ctx context.Context, kind ActionKind, id kernel.UUID) error {
	o, err := w.find(ctx, id)
	if err != nil || o == nil {
		return err
	}

	switch kind {
	case ActionSelect:
		w.activeID = o.ID()
		if err = w.render(ctx); err != nil {
			return err
		}
		return w.focus(ctx, o)

	case ActionEdit:
		w.dialog.OpenForEdit(o)
		return w.render(ctx)

	case ActionStatus:
		return w.advanceStatus(ctx, id)

	case ActionDelete:
		return w.remove(ctx, id)

	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown action %q", kind))
	}
}

// SetFilter changes the status filter and re-renders. raw is "all" or a
// status name.
func (w *Widget) SetFilter(ctx context.Context, raw string) error {
	filter, err := order.ParseFilter(raw)
	if err != nil {
		return err
	}

	w.filter = filter
	return w.render(ctx)
}

// OpenAdd opens an empty dialog for a new order.
func (w *Widget) OpenAdd() {
	w.dialog.OpenForAdd()
}

// CancelDialog closes the dialog without saving.
func (w *Widget) CancelDialog() {
	w.dialog.Cancel()
}

// Submit saves the dialog. It reports false, and leaves the dialog open with
// the typed values, when the payload is rejected: blank name or customer, an
// unknown status, or no open dialog. A new order becomes the selection.
func (w *Widget) Submit(ctx context.Context, form FormPayload) (bool, error) {
	if !w.dialog.IsOpen() {
		return false, nil
	}

	w.dialog.keep(DialogFields(form))

	status, err := order.ParseStatus(form.Status)
	if err != nil {
		w.logger.Debug().Str("status", form.Status).Msg("submission rejected: unknown status")
		return false, nil
	}

	if editingID, editing := w.dialog.EditingID(); editing {
		cmd, cmdErr := commands.NewUpdateOrderCommand(editingID, form.Name, form.Customer, status, form.Note)
		if cmdErr != nil {
			w.logger.Debug().Err(cmdErr).Msg("submission rejected")
			return false, nil
		}
		if err = w.handlers.UpdateOrder.Handle(ctx, cmd); ignoreNotFound(err) != nil {
			return false, err
		}
	} else {
		id := w.newID()
		cmd, cmdErr := commands.NewAddOrderCommand(id, form.Name, form.Customer, status, form.Note)
		if cmdErr != nil {
			w.logger.Debug().Err(cmdErr).Msg("submission rejected")
			return false, nil
		}
		if err = w.handlers.AddOrder.Handle(ctx, cmd); err != nil {
			return false, err
		}
		w.activeID = id
		w.logger.Info().Str("orderId", id.String()).Msg("order added")
	}

	if err = w.render(ctx); err != nil {
		return false, err
	}
	if err = w.focusActive(ctx); err != nil {
		return false, err
	}
	w.dialog.Cancel()

	return true, nil
}

// ClearLocation removes the location of the selected order and its marker.
// It does nothing when no order is selected.
func (w *Widget) ClearLocation(ctx context.Context) error {
	o, err := w.active(ctx)
	if err != nil || o == nil {
		return err
	}

	cmd, err := commands.NewClearOrderLocationCommand(o.ID())
	if err != nil {
		return err
	}
	if err = w.handlers.SetLocation.Handle(ctx, cmd); err != nil {
		return ignoreNotFound(err)
	}

	if err = w.render(ctx); err != nil {
		return err
	}
	return w.focusActive(ctx)
}

// State is the current presentation state.
func (w *Widget) State() State {
	state := State{
		Filter:           w.filter.String(),
		Hint:             w.hint,
		CanClearLocation: w.canClear,
		List:             w.list,
		Dialog: DialogState{
			Open:   w.dialog.IsOpen(),
			Mode:   w.dialog.Mode().String(),
			Title:  w.dialog.Title(),
			Fields: w.dialog.Fields(),
		},
	}
	if w.activeID.Validate() == nil {
		state.ActiveID = w.activeID.String()
	}
	if id, ok := w.dialog.EditingID(); ok {
		state.Dialog.EditingID = id.String()
	}
	return state
}

// ActiveID returns the selected order, false when nothing is selected.
func (w *Widget) ActiveID() (kernel.UUID, bool) {
	return w.activeID, w.activeID.Validate() == nil
}

// Dialog returns the dialog controller state.
func (w *Widget) Dialog() Dialog {
	return w.dialog
}

func (w *Widget) advanceStatus(ctx context.Context, id kernel.UUID) error {
	cmd, err := commands.NewAdvanceOrderStatusCommand(id)
	if err != nil {
		return err
	}
	if err = w.handlers.AdvanceStatus.Handle(ctx, cmd); err != nil {
		return ignoreNotFound(err)
	}

	w.activeID = id
	if err = w.render(ctx); err != nil {
		return err
	}
	return w.focusActive(ctx)
}

func (w *Widget) remove(ctx context.Context, id kernel.UUID) error {
	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return err
	}
	if err = w.handlers.RemoveOrder.Handle(ctx, cmd); err != nil {
		return ignoreNotFound(err)
	}
	w.logger.Info().Str("orderId", id.String()).Msg("order removed")

	if w.activeID.IsEqual(id) {
		orders, listErr := w.allOrders(ctx)
		if listErr != nil {
			return listErr
		}
		w.activeID = kernel.UUID{}
		if len(orders) > 0 {
			w.activeID = orders[0].ID()
		}
	}

	if err = w.render(ctx); err != nil {
		return err
	}
	return w.focusActive(ctx)
}

// onMapClick places the selected order at the clicked point. Clicks without a
// selection are ignored.
func (w *Widget) onMapClick(ctx context.Context, at kernel.Location) error {
	o, err := w.active(ctx)
	if err != nil || o == nil {
		return err
	}

	if err = w.setLocation(ctx, o.ID(), at); err != nil {
		return ignoreNotFound(err)
	}

	if err = w.render(ctx); err != nil {
		return err
	}
	return w.focusActive(ctx)
}

// onMarkerDragEnd stores the dropped position. Selection and map focus stay
// as they are.
func (w *Widget) onMarkerDragEnd(ctx context.Context, orderID kernel.UUID, at kernel.Location) error {
	if err := w.setLocation(ctx, orderID, at); err != nil {
		return ignoreNotFound(err)
	}
	return w.render(ctx)
}

func (w *Widget) setLocation(ctx context.Context, id kernel.UUID, at kernel.Location) error {
	cmd, err := commands.NewSetOrderLocationCommand(id, at)
	if err != nil {
		return err
	}
	if err = w.handlers.SetLocation.Handle(ctx, cmd); err != nil {
		return err
	}

	w.logger.Debug().Str("orderId", id.String()).Stringer("location", at).Msg("order located")
	return nil
}

// render rebuilds the list and makes sure every located order has a marker.
func (w *Widget) render(ctx context.Context) error {
	orders, err := w.allOrders(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		w.markers.Ensure(o)
	}
	w.list = RenderList(orders, w.filter, w.activeID)
	return nil
}

// focus selects o and points the map at it. A nil o clears the selection.
func (w *Widget) focus(_ context.Context, o *order.Order) error {
	w.canClear = false

	if o == nil {
		w.activeID = kernel.UUID{}
		w.hint = HintNoSelection
		return nil
	}

	w.activeID = o.ID()
	at, ok := o.Location()
	if !ok {
		w.hint = HintNoLocation
		return nil
	}

	w.markers.Ensure(o)
	w.view.SetView(at, w.settings.FocusZoom, true)
	w.hint = fmt.Sprintf("Selected: %s (%s)", o.Name(), at.Format(hintCoordinateDecimals))
	w.canClear = true
	return nil
}

func (w *Widget) focusActive(ctx context.Context) error {
	o, err := w.active(ctx)
	if err != nil {
		return err
	}
	return w.focus(ctx, o)
}

// active resolves the selection through the store. It returns nil when
// nothing is selected or the selected order is gone.
func (w *Widget) active(ctx context.Context) (*order.Order, error) {
	if w.activeID.Validate() != nil {
		return nil, nil
	}
	return w.find(ctx, w.activeID)
}

// find returns nil without error for an unknown ID.
func (w *Widget) find(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return nil, nil //nolint:nilerr // the zero ID never resolves
	}

	o, err := w.handlers.GetOrder.Handle(ctx, query)
	if err != nil {
		return nil, ignoreNotFound(err)
	}
	return o, nil
}

func (w *Widget) allOrders(ctx context.Context) ([]*order.Order, error) {
	return w.handlers.FilteredOrders.Handle(ctx, queries.NewGetFilteredOrdersQuery(order.FilterAll()))
}

func ignoreNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
