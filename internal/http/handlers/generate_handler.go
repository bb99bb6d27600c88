// Generation HTTP handler.
//
// This file exposes the intake endpoint:
//   - POST /generate   (validate → compile facts → generate → create order)
//
// The handler is transport-thin: it validates the top-level request shape,
// delegates the pipeline to DraftService, and translates service errors into
// the stable errorCode taxonomy. Rate limiting is applied by the governor
// middleware attached to this route, not here.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
	"github.com/reclamo-app/go-reclamo-backend/internal/services"
	"github.com/reclamo-app/go-reclamo-backend/internal/usecase"
)

//
// Service contracts (context-aware)
//

// DraftService defines the generation pipeline consumed by this handler.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DraftService interface {
	// Generate runs validation, fact compilation, the provider call, and
	// order creation, returning the persisted pending order.
	Generate(ctx context.Context, in services.GenerateInput) (*domain.Order, error)
}

//
// DTOs
//

// GenerateRequest is the JSON payload for POST /generate.
//
// Either Form (structured, preferred for registered use cases) or Facts
// (legacy free text) carries the user's input. Locale selects the language
// of the translation.
type GenerateRequest struct {
	// Locale is the requester's language as a BCP 47 tag.
	Locale string `json:"locale" example:"de"`
	// Category selects the use case ("cancel", "trafico", …).
	Category string `json:"category" binding:"required,min=1" example:"cancel"`
	// Company is the recipient slug, or the variant-carrying compound slug
	// for "trafico"/"trabajo" ("multa-madrid").
	Company string `json:"company" example:"vodafone"`
	// Facts is the legacy free-text fallback for unregistered use cases.
	Facts string `json:"facts,omitempty" example:"I cancelled in March and was charged again in April."`
	// Form is the structured payload validated against the use-case schema.
	Form map[string]string `json:"form,omitempty"`
}

// GenerateResponse is the success envelope for POST /generate. The primary
// legal text is included here because the caller just paid the generation
// cost; the order itself stays pending until the mock payment completes.
type GenerateResponse struct {
	OrderID               string `json:"orderId"`
	SpanishLegalText      string `json:"spanish_legal_text"`
	NativeUserTranslation string `json:"native_user_translation"`
	Facts                 string `json:"facts"`
}

// Handlers groups the HTTP endpoints for generation and orders. It depends
// on abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	draftSvc DraftService
	orderSvc OrderService
}

// New constructs a Handlers instance bound to the given services.
func New(draftSvc DraftService, orderSvc OrderService) *Handlers {
	return &Handlers{draftSvc: draftSvc, orderSvc: orderSvc}
}

// Generate godoc
// @ID          generateDocument
// @Summary     Generate a legal document
// @Description Validates the use-case form (or legacy facts), compiles the fact sheet, calls the generation provider, and creates a pending order.
// @Tags        Generation
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GenerateRequest  true  "Generation payload"
//
// @Success     200  {object}  handlers.GenerateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "INVALID_REQUEST, FORM_VALIDATION_ERROR or FACTS_REQUIRED"
// @Failure     429  {object}  handlers.ErrorResponse  "RATE_LIMIT_EXCEEDED"
// @Failure     500  {object}  handlers.ErrorResponse  "UNKNOWN_ERROR"
// @Router      /generate [post]
func (h *Handlers) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		fail(c, http.StatusBadRequest, ErrCodeInvalidRequest, "category is required")
		return
	}

	order, err := h.draftSvc.Generate(c.Request.Context(), services.GenerateInput{
		Locale:   req.Locale,
		Category: req.Category,
		Company:  req.Company,
		Facts:    req.Facts,
		Form:     req.Form,
	})
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			failWithIssues(c, http.StatusBadRequest, ErrCodeFormValidation, "form validation failed", verr.Issues)
		case errors.Is(err, services.ErrFactsRequired):
			fail(c, http.StatusBadRequest, ErrCodeFactsRequired, "facts are too short to draft a document")
		default:
			// Upstream provider and persistence failures surface as one
			// generic failure; details stay in the logs.
			fail(c, http.StatusInternalServerError, ErrCodeUnknown, "document generation failed")
		}
		return
	}

	ok(c, http.StatusOK, GenerateResponse{
		OrderID:               order.ID,
		SpanishLegalText:      order.Snapshot.SpanishLegalText,
		NativeUserTranslation: order.Snapshot.NativeUserTranslation,
		Facts:                 order.Snapshot.Facts,
	})
}

// ListUseCases godoc
// @ID          listUseCases
// @Summary     List use-case metadata
// @Description Returns display titles and descriptions for every registered use case, keyed by category (or category/variant).
// @Tags        Generation
// @Produce     json
//
// @Success     200  {object}  map[string]usecase.Meta
// @Router      /usecases [get]
func (h *Handlers) ListUseCases(c *gin.Context) {
	ok(c, http.StatusOK, usecase.All())
}
