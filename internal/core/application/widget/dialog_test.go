package widget_test

import (
	"testing"

	"ordertracker/internal/core/application/widget"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialog(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "Order #001", "Mr. Wang", order.Delivering, "call first")
	require.NoError(t, err)

	t.Run("zero value is closed", func(t *testing.T) {
		var d widget.Dialog

		assert.False(t, d.IsOpen())
		_, editing := d.EditingID()
		assert.False(t, editing)
	})

	t.Run("open for add resets the form", func(t *testing.T) {
		var d widget.Dialog
		d.OpenForEdit(o)

		d.OpenForAdd()

		assert.True(t, d.IsOpen())
		assert.Equal(t, widget.DialogAdd, d.Mode())
		assert.Equal(t, "New order", d.Title())
		assert.Equal(t, widget.DialogFields{Status: "Pending"}, d.Fields())
		_, editing := d.EditingID()
		assert.False(t, editing)
	})

	t.Run("open for edit prefills", func(t *testing.T) {
		var d widget.Dialog

		d.OpenForEdit(o)

		assert.Equal(t, widget.DialogEdit, d.Mode())
		assert.Equal(t, "Edit order", d.Title())
		assert.Equal(t, widget.DialogFields{
			Name:     "Order #001",
			Customer: "Mr. Wang",
			Status:   "Delivering",
			Note:     "call first",
		}, d.Fields())
		id, editing := d.EditingID()
		require.True(t, editing)
		assert.True(t, o.ID().IsEqual(id))
	})

	t.Run("cancel clears editing id", func(t *testing.T) {
		var d widget.Dialog
		d.OpenForEdit(o)

		d.Cancel()

		assert.False(t, d.IsOpen())
		_, editing := d.EditingID()
		assert.False(t, editing)
		assert.Equal(t, widget.DialogFields{}, d.Fields())
	})
}
