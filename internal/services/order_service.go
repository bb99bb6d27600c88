// Package services – OrderService
//
// OrderService owns the order lifecycle after creation: retrieval by id and
// the single pending→paid transition. Identifier validation happens here,
// before any store access, so malformed ids never reach the database.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
	"github.com/reclamo-app/go-reclamo-backend/internal/repo"
)

// OrderService exposes order retrieval and the mock-payment transition.
type OrderService struct {
	DB *gorm.DB

	// MockPaymentsEnabled gates MarkPaid entirely. With the flag off the
	// store is never touched.
	MockPaymentsEnabled bool
}

// Get fetches an order by id. Ids must be canonical UUID tokens
// (case-insensitive); anything else fails with ErrInvalidOrderID before the
// store is consulted. A well-formed but unknown id yields ErrOrderNotFound.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	tr := otel.Tracer("services/OrderService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("order.id", id)),
	)
	defer span.End()

	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidOrderID
	}
	o, err := repo.GetOrder(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// MarkPaid transitions an order from pending to paid.
//
// The transition is gated by the mock-payments feature flag and is
// idempotent in effect: an already-paid order still reports paid and is not
// an error. Paid is terminal; there is no way back to pending. Payment only
// flips visibility of the generated document, never its content.
func (s *OrderService) MarkPaid(ctx context.Context, id string) (*domain.Order, error) {
	tr := otel.Tracer("services/OrderService")
	ctx, span := tr.Start(ctx, "MarkPaid",
		trace.WithAttributes(attribute.String("order.id", id)),
	)
	defer span.End()

	if !s.MockPaymentsEnabled {
		return nil, ErrMockPaymentsDisabled
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidOrderID
	}
	o, err := repo.MarkOrderPaid(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
