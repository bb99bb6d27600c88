// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Order
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an order is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateOrder inserts a new pending order carrying the full content
// snapshot. The order ID is a randomly generated UUID and CreatedAt is set
// to UTC. Status and snapshot are written atomically in one INSERT: callers
// never observe a partially-populated order.
func CreateOrder(ctx context.Context, db *gorm.DB, amountCents int, snap domain.ContentSnapshot) (*domain.Order, error) {
	o := &domain.Order{
		ID:          uuid.NewString(),
		Status:      domain.OrderStatusPending,
		AmountCents: amountCents,
		Snapshot:    snap,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder fetches a single order by ID. If the record does not exist it
// returns ErrNotFound; other DB errors are returned raw.
func GetOrder(ctx context.Context, db *gorm.DB, id string) (*domain.Order, error) {
	var o domain.Order
	if err := db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkOrderPaid transitions an order to paid and returns the updated row.
//
// The transition is idempotent in effect: marking an already-paid order
// leaves it paid and is not an error. Only the status column mutates; the
// snapshot is immutable after creation.
func MarkOrderPaid(ctx context.Context, db *gorm.DB, id string) (*domain.Order, error) {
	o, err := GetOrder(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderStatusPaid {
		return o, nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", domain.OrderStatusPaid)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	o.Status = domain.OrderStatusPaid
	return o, nil
}
