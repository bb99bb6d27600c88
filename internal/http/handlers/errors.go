// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes the symbolic error codes mapped to HTTP responses
// (via the `fail()` helper in this package). Clients branch on these codes
// programmatically, so they form a stable, machine-readable taxonomy.
//
// Conventions:
//   - Codes are UPPER_SNAKE_CASE and returned in the `errorCode` field.
//   - Every error response carries both an HTTP status and one of these
//     codes; no failure path hangs or returns an empty body.
//
// Example response:
//
//	HTTP/1.1 404 Not Found
//	{ "errorCode": "ORDER_NOT_FOUND" }
package handlers

const (
	// Generation pipeline
	ErrCodeRateLimited    = "RATE_LIMIT_EXCEEDED"  // 429, emitted by the governor middleware
	ErrCodeFormValidation = "FORM_VALIDATION_ERROR" // 400, carries field-level issues
	ErrCodeInvalidRequest = "INVALID_REQUEST"       // 400, malformed top-level request
	ErrCodeFactsRequired  = "FACTS_REQUIRED"        // 400, compiled fact sheet too short
	ErrCodeUnknown        = "UNKNOWN_ERROR"         // 500, upstream or persistence failure

	// Order lifecycle
	ErrCodeInvalidOrderID       = "INVALID_ORDER_ID"       // 400, malformed identifier
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"        // 404
	ErrCodeMockPaymentsDisabled = "MOCK_PAYMENTS_DISABLED" // 403, feature flag off

	// Transport fallbacks
	ErrCodeNotFound         = "NOT_FOUND"          // unmatched route
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // wrong verb on a known route
)
