// Package orderrepo provides a gorm-backed order store on a private in-memory
// SQLite database. Data lives only as long as the process, like the default
// in-memory store, but goes through a real query engine.
package orderrepo

import (
	"fmt"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Position orders the collection: the front of the list has the smallest value.
type OrderDTO struct {
	ID          string `gorm:"type:text;primaryKey"`
	Position    int64  `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Customer    string `gorm:"not null"`
	Status      int    `gorm:"not null"`
	Note        string
	LocationLat *float64
	LocationLng *float64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// Position is assigned by the repository.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:       o.ID().String(),
		Name:     o.Name(),
		Customer: o.Customer(),
		Status:   int(o.Status()),
		Note:     o.Note(),
	}

	if loc, ok := o.Location(); ok {
		lat, lng := loc.Lat(), loc.Lng()
		dto.LocationLat = &lat
		dto.LocationLng = &lng
	}

	return dto
}

// toDomain converts a database row back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	switch {
	case dto.LocationLat != nil && dto.LocationLng != nil:
		loc, locErr := kernel.NewLocation(*dto.LocationLat, *dto.LocationLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	case dto.LocationLat != nil || dto.LocationLng != nil:
		return nil, fmt.Errorf("order %s has a partial location", dto.ID)
	}

	return order.RestoreOrder(id, dto.Name, dto.Customer, order.Status(dto.Status), dto.Note, location)
}
