package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InMemoryDSN opens a SQLite database private to a single connection.
const InMemoryDSN = "file::memory:"

// OpenInMemory opens an in-memory SQLite database and migrates the orders table.
// The pool is pinned to one connection so the database is never dropped while
// the process runs.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(InMemoryDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err = db.AutoMigrate(&OrderDTO{}); err != nil {
		return nil, fmt.Errorf("migrate orders: %w", err)
	}

	return db, nil
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Prepend stores a new order in front of every existing one.
func (r *GormOrderRepository) Prepend(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"order id", fmt.Errorf("%s is already stored", dto.ID))
		}

		var front sql.NullInt64
		if err := tx.Model(&OrderDTO{}).Select("MIN(position)").Row().Scan(&front); err != nil {
			return err
		}
		if front.Valid {
			dto.Position = front.Int64 - 1
		}

		return tx.Create(&dto).Error
	})
}

// Update saves an existing order without changing its position.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":         dto.Name,
		"customer":     dto.Customer,
		"status":       dto.Status,
		"note":         dto.Note,
		"location_lat": dto.LocationLat,
		"location_lng": dto.LocationLng,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// Delete removes an order by ID.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every order, front of the collection first.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
