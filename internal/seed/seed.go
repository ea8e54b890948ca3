// Package seed loads the orders the tracker starts with.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"

	"gopkg.in/yaml.v3"
)

//go:embed orders.yaml
var defaultOrders []byte

type file struct {
	Orders []entry `yaml:"orders"`
}

type entry struct {
	Name     string    `yaml:"name"`
	Customer string    `yaml:"customer"`
	Status   string    `yaml:"status"`
	Note     string    `yaml:"note"`
	Location *position `yaml:"location"`
}

type position struct {
	Lat *float64 `yaml:"lat"`
	Lng *float64 `yaml:"lng"`
}

// Default returns the built-in seed orders.
func Default() ([]*order.Order, error) {
	return Decode(bytes.NewReader(defaultOrders))
}

// LoadFile reads seed orders from a YAML file.
func LoadFile(path string) ([]*order.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses seed orders and gives each a fresh ID. Every entry is
// validated like a dialog submission; a location needs both coordinates.
func Decode(r io.Reader) ([]*order.Order, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(doc.Orders))
	for i, e := range doc.Orders {
		o, err := e.toOrder()
		if err != nil {
			return nil, fmt.Errorf("seed order %d: %w", i, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Apply stores orders so that the first one ends up at the front.
func Apply(ctx context.Context, repo ports.OrderRepository, orders []*order.Order) error {
	for _, o := range slices.Backward(orders) {
		if err := repo.Prepend(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (e entry) toOrder() (*order.Order, error) {
	status := order.Pending
	if e.Status != "" {
		parsed, err := order.ParseStatus(e.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	var location *kernel.Location
	if e.Location != nil {
		if e.Location.Lat == nil || e.Location.Lng == nil {
			return nil, errors.New("location needs both lat and lng")
		}
		at, err := kernel.NewLocation(*e.Location.Lat, *e.Location.Lng)
		if err != nil {
			return nil, err
		}
		location = &at
	}

	return order.RestoreOrder(kernel.NewUUID(), e.Name, e.Customer, status, e.Note, location)
}
