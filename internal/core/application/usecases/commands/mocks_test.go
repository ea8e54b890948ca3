package commands_test

import (
	"context"
	"testing"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Prepend(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMarkerSync struct{ mock.Mock }

func (m *MockMarkerSync) Sync(o *order.Order) {
	m.Called(o)
}

func (m *MockMarkerSync) Remove(id kernel.UUID) {
	m.Called(id)
}

func newTestOrder(t testing.TB) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "Order #001", "Mr. Wang", order.Pending, "")
	if err != nil {
		t.Fatal(err)
	}
	return o
}
