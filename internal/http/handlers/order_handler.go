// Order HTTP handlers.
//
// This file exposes the order lifecycle endpoints:
//   - GET  /orders/get?orderId=<id>   (fetch an order and its snapshot)
//   - POST /orders/mock-pay           (pending → paid, behind a feature flag)
//
// The snapshot returned by GET includes both generated texts; gating the
// full legal text behind payment is a presentation concern of the caller.
// The status field is the authoritative signal for that gate.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
	"github.com/reclamo-app/go-reclamo-backend/internal/services"
)

// OrderService defines the order lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type OrderService interface {
	// Get fetches an order by id, validating the identifier first.
	Get(ctx context.Context, id string) (*domain.Order, error)
	// MarkPaid transitions an order to paid when mock payments are enabled.
	MarkPaid(ctx context.Context, id string) (*domain.Order, error)
}

//
// DTOs
//

// OrderResponse is the success envelope for GET /orders/get.
type OrderResponse struct {
	OrderID         string                 `json:"orderId"`
	Status          string                 `json:"status"`
	ContentSnapshot domain.ContentSnapshot `json:"content_snapshot"`
	CreatedAt       time.Time              `json:"created_at"`
}

// MockPayRequest is the JSON payload for POST /orders/mock-pay.
type MockPayRequest struct {
	OrderID string `json:"orderId" binding:"required,min=1" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// MockPayResponse is the success envelope for POST /orders/mock-pay.
type MockPayResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Fetch an order
// @Description Returns the order status and its immutable content snapshot.
// @Tags        Orders
// @Produce     json
//
// @Param       orderId  query  string  true  "Order ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.OrderResponse
// @Failure     400  {object}  handlers.ErrorResponse  "INVALID_ORDER_ID"
// @Failure     404  {object}  handlers.ErrorResponse  "ORDER_NOT_FOUND"
// @Router      /orders/get [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Query("orderId"))

	order, err := h.orderSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrderID):
			fail(c, http.StatusBadRequest, ErrCodeInvalidOrderID, "orderId must be a UUID")
		case errors.Is(err, services.ErrOrderNotFound):
			fail(c, http.StatusNotFound, ErrCodeOrderNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUnknown, "order lookup failed")
		}
		return
	}

	ok(c, http.StatusOK, OrderResponse{
		OrderID:         order.ID,
		Status:          order.Status,
		ContentSnapshot: order.Snapshot,
		CreatedAt:       order.CreatedAt,
	})
}

// MockPay godoc
// @ID          mockPayOrder
// @Summary     Mark an order paid (mock)
// @Description Transitions a pending order to paid. Enabled only when the MOCK_PAYMENTS_ENABLED flag is set; idempotent for already-paid orders.
// @Tags        Orders
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.MockPayRequest  true  "Order to pay"
//
// @Success     200  {object}  handlers.MockPayResponse
// @Failure     400  {object}  handlers.ErrorResponse  "INVALID_ORDER_ID"
// @Failure     403  {object}  handlers.ErrorResponse  "MOCK_PAYMENTS_DISABLED"
// @Failure     404  {object}  handlers.ErrorResponse  "ORDER_NOT_FOUND"
// @Router      /orders/mock-pay [post]
func (h *Handlers) MockPay(c *gin.Context) {
	var req MockPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidOrderID, "orderId is required")
		return
	}

	order, err := h.orderSvc.MarkPaid(c.Request.Context(), strings.TrimSpace(req.OrderID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMockPaymentsDisabled):
			fail(c, http.StatusForbidden, ErrCodeMockPaymentsDisabled, "mock payments are disabled")
		case errors.Is(err, services.ErrInvalidOrderID):
			fail(c, http.StatusBadRequest, ErrCodeInvalidOrderID, "orderId must be a UUID")
		case errors.Is(err, services.ErrOrderNotFound):
			fail(c, http.StatusNotFound, ErrCodeOrderNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUnknown, "payment update failed")
		}
		return
	}

	ok(c, http.StatusOK, MockPayResponse{
		Success: true,
		OrderID: order.ID,
		Status:  order.Status,
	})
}
