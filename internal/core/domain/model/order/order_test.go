package order_test

import (
	"testing"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create order without location", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Order #001", "Mr. Wang", order.Pending, "Awaiting stock")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Order #001", o.Name())
		assert.Equal(t, "Mr. Wang", o.Customer())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "Awaiting stock", o.Note())
		assert.False(t, o.HasLocation())
		_, ok := o.Location()
		assert.False(t, ok)
	})

	t.Run("should trim labels and note", func(t *testing.T) {
		o, err := order.NewOrder(validID, "  Test ", "\tCust\n", order.Pending, "  fragile  ")

		require.NoError(t, err)
		assert.Equal(t, "Test", o.Name())
		assert.Equal(t, "Cust", o.Customer())
		assert.Equal(t, "fragile", o.Note())
	})

	t.Run("should allow empty note", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Test", "Cust", order.Complete, "")

		require.NoError(t, err)
		assert.Empty(t, o.Note())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Test", "Cust", order.Pending, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with blank name or customer", func(t *testing.T) {
		o, err := order.NewOrder(validID, "   ", "", order.Pending, "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "value is required: customer")
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Test", "Cust", order.Unknown, "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	loc := mustLocation(t, 22.5431, 114.0579)

	t.Run("should restore location", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "Order #002", "Ms. Li", order.Delivering, "", &loc)

		require.NoError(t, err)
		got, ok := o.Location()
		require.True(t, ok)
		assert.True(t, got.IsEqual(loc))
	})

	t.Run("should restore without location", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "Order #002", "Ms. Li", order.Delivering, "", nil)

		require.NoError(t, err)
		assert.False(t, o.HasLocation())
	})

	t.Run("should reject zero value location", func(t *testing.T) {
		var zero kernel.Location

		o, err := order.RestoreOrder(id, "Order #002", "Ms. Li", order.Delivering, "", &zero)

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	o1, _ := order.NewOrder(id, "A", "B", order.Pending, "")
	o2, _ := order.NewOrder(id, "C", "D", order.Complete, "")
	o3, _ := order.NewOrder(kernel.NewUUID(), "A", "B", order.Pending, "")

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_Edit(t *testing.T) {
	loc := mustLocation(t, 31.2304, 121.4737)

	t.Run("should overwrite details and keep location", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), "Order #001", "Mr. Wang", order.Pending, "old", &loc)

		err := o.Edit(" Order #001b ", "Mrs. Wang", order.Delivering, "")

		require.NoError(t, err)
		assert.Equal(t, "Order #001b", o.Name())
		assert.Equal(t, "Mrs. Wang", o.Customer())
		assert.Equal(t, order.Delivering, o.Status())
		assert.Empty(t, o.Note())
		got, ok := o.Location()
		require.True(t, ok)
		assert.True(t, got.IsEqual(loc))
	})

	t.Run("should leave order untouched on invalid edit", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Order #001", "Mr. Wang", order.Pending, "keep")

		err := o.Edit("renamed", " ", order.Complete, "changed")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Order #001", o.Name())
		assert.Equal(t, "Mr. Wang", o.Customer())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "keep", o.Note())
	})
}

func TestOrder_AdvanceStatus(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), "A", "B", order.Pending, "")

	expected := []order.Status{order.Processing, order.Delivering, order.Complete, order.Pending}
	for _, want := range expected {
		o.AdvanceStatus()
		assert.Equal(t, want, o.Status())
	}
}

func TestOrder_Location(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), "A", "B", order.Pending, "")
	first := mustLocation(t, 10, 20)
	second := mustLocation(t, -10, -20)

	t.Run("set then replace", func(t *testing.T) {
		require.NoError(t, o.SetLocation(first))
		require.NoError(t, o.SetLocation(second))

		got, ok := o.Location()
		require.True(t, ok)
		assert.True(t, got.IsEqual(second))
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		o.ClearLocation()
		o.ClearLocation()

		assert.False(t, o.HasLocation())
	})

	t.Run("rejects zero value location", func(t *testing.T) {
		err := o.SetLocation(kernel.Location{})

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		assert.False(t, o.HasLocation())
	})
}
