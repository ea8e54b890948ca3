package services_test

import (
	"context"
	"errors"
	"testing"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarker struct {
	key       string
	at        kernel.Location
	draggable bool
	onDragEnd ports.LocationHandler
	moves     int
}

func (m *fakeMarker) Key() string                             { return m.key }
func (m *fakeMarker) LatLng() kernel.Location                 { return m.at }
func (m *fakeMarker) SetLatLng(at kernel.Location)            { m.at = at; m.moves++ }
func (m *fakeMarker) OnDragEnd(handler ports.LocationHandler) { m.onDragEnd = handler }

type fakeMap struct {
	added   []*fakeMarker
	removed []string
}

func (f *fakeMap) AddTileLayer(ports.TileLayer)       {}
func (f *fakeMap) SetView(kernel.Location, int, bool) {}
func (f *fakeMap) OnClick(ports.LocationHandler)      {}
func (f *fakeMap) RemoveMarker(marker ports.Marker)   { f.removed = append(f.removed, marker.Key()) }
func (f *fakeMap) AddMarker(key string, at kernel.Location, draggable bool) ports.Marker {
	m := &fakeMarker{key: key, at: at, draggable: draggable}
	f.added = append(f.added, m)
	return m
}

func newLocatedOrder(t *testing.T, lat, lng float64) *order.Order {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), "Order #001", "Mr. Wang", order.Pending, "", &loc)
	require.NoError(t, err)
	return o
}

func TestMarkerRegistry_Ensure(t *testing.T) {
	t.Run("should not create marker for order without location", func(t *testing.T) {
		view := &fakeMap{}
		registry := services.NewMarkerRegistry(view)
		o, _ := order.NewOrder(kernel.NewUUID(), "A", "B", order.Pending, "")

		marker, ok := registry.Ensure(o)

		assert.False(t, ok)
		assert.Nil(t, marker)
		assert.Empty(t, view.added)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("should create one draggable marker keyed by order id", func(t *testing.T) {
		view := &fakeMap{}
		registry := services.NewMarkerRegistry(view)
		o := newLocatedOrder(t, 31.2304, 121.4737)

		marker, ok := registry.Ensure(o)

		require.True(t, ok)
		require.Len(t, view.added, 1)
		assert.Equal(t, o.ID().String(), marker.Key())
		assert.True(t, view.added[0].draggable)
		assert.InDelta(t, 31.2304, marker.LatLng().Lat(), 0)
	})

	t.Run("should return existing marker unchanged", func(t *testing.T) {
		view := &fakeMap{}
		registry := services.NewMarkerRegistry(view)
		o := newLocatedOrder(t, 31.2304, 121.4737)
		first, _ := registry.Ensure(o)

		moved, _ := kernel.NewLocation(1, 1)
		require.NoError(t, o.SetLocation(moved))
		second, _ := registry.Ensure(o)

		assert.Same(t, first, second)
		assert.Len(t, view.added, 1)
		assert.InDelta(t, 31.2304, second.LatLng().Lat(), 0)
	})
}

func TestMarkerRegistry_DragEnd(t *testing.T) {
	view := &fakeMap{}
	registry := services.NewMarkerRegistry(view)
	o := newLocatedOrder(t, 31.2304, 121.4737)
	registry.Ensure(o)
	dropped, _ := kernel.NewLocation(30, 120)

	t.Run("should be a no-op without handler", func(t *testing.T) {
		require.NoError(t, view.added[0].onDragEnd(t.Context(), dropped))
	})

	t.Run("should report order id and position to the handler", func(t *testing.T) {
		var gotID kernel.UUID
		var gotAt kernel.Location
		registry.OnDragEnd(func(_ context.Context, id kernel.UUID, at kernel.Location) error {
			gotID, gotAt = id, at
			return nil
		})

		require.NoError(t, view.added[0].onDragEnd(t.Context(), dropped))

		assert.True(t, gotID.IsEqual(o.ID()))
		assert.True(t, gotAt.IsEqual(dropped))
	})

	t.Run("should propagate handler errors", func(t *testing.T) {
		boom := errors.New("store unavailable")
		registry.OnDragEnd(func(context.Context, kernel.UUID, kernel.Location) error { return boom })

		require.ErrorIs(t, view.added[0].onDragEnd(t.Context(), dropped), boom)
	})
}

func TestMarkerRegistry_Sync(t *testing.T) {
	t.Run("should move the existing marker instead of adding another", func(t *testing.T) {
		view := &fakeMap{}
		registry := services.NewMarkerRegistry(view)
		o := newLocatedOrder(t, 31.2304, 121.4737)
		registry.Sync(o)

		next, _ := kernel.NewLocation(22.5431, 114.0579)
		require.NoError(t, o.SetLocation(next))
		registry.Sync(o)

		require.Len(t, view.added, 1)
		assert.Equal(t, 1, view.added[0].moves)
		assert.True(t, view.added[0].LatLng().IsEqual(next))
	})

	t.Run("should remove the marker once the location is cleared", func(t *testing.T) {
		view := &fakeMap{}
		registry := services.NewMarkerRegistry(view)
		o := newLocatedOrder(t, 31.2304, 121.4737)
		registry.Sync(o)

		o.ClearLocation()
		registry.Sync(o)

		assert.Equal(t, []string{o.ID().String()}, view.removed)
		_, ok := registry.Get(o.ID())
		assert.False(t, ok)
	})
}

func TestMarkerRegistry_Remove(t *testing.T) {
	view := &fakeMap{}
	registry := services.NewMarkerRegistry(view)
	o := newLocatedOrder(t, 31.2304, 121.4737)
	registry.Ensure(o)

	registry.Remove(o.ID())
	registry.Remove(o.ID())
	registry.Remove(kernel.NewUUID())

	assert.Equal(t, 0, registry.Len())
	assert.Len(t, view.removed, 1, "only the live marker is detached")
}
