// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints: the structured error envelope, consistent JSON serialization,
// and helpers for common HTTP patterns. The goal is uniform responses for
// both success and failure, making the API predictable and machine-friendly.
//
// Conventions:
//   - All error responses return an ErrorResponse with a stable `errorCode`.
//   - `fail()` centralizes error logging and formatting, ensuring 5xx
//     responses are logged with request context for observability.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reclamo-app/go-reclamo-backend/internal/http/middleware"
	"github.com/reclamo-app/go-reclamo-backend/internal/usecase"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - ErrorCode: stable, machine-readable code (see errors.go constants).
//   - Message: optional human-readable description.
//   - Issues: present only for FORM_VALIDATION_ERROR; field-level detail.
//   - RequestID: optional correlation ID echoed from X-Request-ID, used to
//     correlate server logs with client-side errors.
type ErrorResponse struct {
	ErrorCode string               `json:"errorCode" example:"ORDER_NOT_FOUND"`
	Message   string               `json:"message,omitempty" example:"order not found"`
	Issues    []usecase.FieldIssue `json:"issues,omitempty"`
	RequestID string               `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	failWithIssues(c, status, code, msg, nil)
}

// failWithIssues is fail() plus the field-level issue list attached to form
// validation errors.
func failWithIssues(c *gin.Context, status int, code, msg string, issues []usecase.FieldIssue) {
	resp := ErrorResponse{
		ErrorCode: code,
		Message:   msg,
		Issues:    issues,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("errorCode", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
