// Package services – DraftService
//
// This file implements DraftService, the application-level component that
// owns the generation pipeline: resolve the use case, validate the form (or
// accept legacy free-text facts), compile the canonical fact sheet, call the
// generation provider, and persist the resulting order with its immutable
// content snapshot.
//
// The pipeline is strictly ordered: the provider is only called once the
// fact sheet has passed the minimum-length gate, and the order is only
// created once generation has succeeded. Nothing is returned to the caller
// unless the persistence write succeeded.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the category/company pair and the outcome.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/language"

	"github.com/reclamo-app/go-reclamo-backend/internal/directory"
	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
	"github.com/reclamo-app/go-reclamo-backend/internal/generation"
	"github.com/reclamo-app/go-reclamo-backend/internal/repo"
	"github.com/reclamo-app/go-reclamo-backend/internal/usecase"
)

// defaultLocale is used when the requester's locale is missing or not a
// parseable BCP 47 tag. The translation side of the contract always needs a
// target language.
const defaultLocale = "en"

// GenerateInput is the validated top-level request handed to the pipeline.
// Exactly one of Form (structured) or Facts (legacy free text) is expected
// to carry the user's input; when both are present the form wins for
// registered use cases.
type GenerateInput struct {
	Locale   string
	Category string
	Company  string
	Facts    string
	Form     map[string]string
}

// DraftService coordinates fact compilation, generation, and persistence.
type DraftService struct {
	DB         *gorm.DB
	Generator  generation.Generator
	PriceCents int
}

// Generate runs the full pipeline and returns the persisted pending order.
//
// Failure modes, in pipeline order:
//   - *ValidationError when the form has field-level issues
//   - ErrFactsRequired when the compiled fact sheet is too short
//   - provider errors from the single generation call
//   - raw DB errors when the order insert fails
func (s *DraftService) Generate(ctx context.Context, in GenerateInput) (*domain.Order, error) {
	tr := otel.Tracer("services/DraftService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("usecase.category", in.Category),
			attribute.String("usecase.company", in.Company),
		),
	)
	defer span.End()

	locale := normalizeLocale(in.Locale)
	desc := usecase.Resolve(in.Category, in.Company)

	// Recipient resolution is best effort: an unknown slug means the
	// document simply carries no recipient lines.
	var rec *domain.Recipient
	if r, ok := directory.Lookup(usecase.EntitySlug(in.Category, in.Company)); ok {
		rec = &r
	}

	facts, err := s.compileFacts(desc, in, rec)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(facts)) < usecase.MinFactLen {
		return nil, ErrFactsRequired
	}

	hint := ""
	if desc != nil {
		hint = desc.Meta.Title
	}
	res, err := s.Generator.Generate(ctx, locale, facts, hint)
	if err != nil {
		return nil, err
	}

	snap := domain.ContentSnapshot{
		Locale:                locale,
		Category:              in.Category,
		Company:               in.Company,
		Recipient:             rec,
		Facts:                 facts,
		Form:                  in.Form,
		SpanishLegalText:      res.SpanishLegalText,
		NativeUserTranslation: res.NativeUserTranslation,
	}
	return repo.CreateOrder(ctx, s.DB, s.PriceCents, snap)
}

// compileFacts renders the canonical fact sheet: the registered compiler for
// structured forms, or the caller's free text unmodified when no descriptor
// resolves or no form was sent.
func (s *DraftService) compileFacts(desc *usecase.Descriptor, in GenerateInput, rec *domain.Recipient) (string, error) {
	if desc == nil || in.Form == nil {
		return in.Facts, nil
	}
	form, issues := usecase.Validate(desc.Schema, in.Form)
	if len(issues) > 0 {
		return "", &ValidationError{Issues: issues}
	}
	return desc.Compile(form, rec), nil
}

// normalizeLocale canonicalizes a BCP 47 tag ("pt-br" → "pt-BR") and falls
// back to the default for empty or unparseable input. A bad locale is not a
// request error: it only affects which language the translation targets.
func normalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLocale
	}
	tag, err := language.Parse(raw)
	if err != nil || tag == language.Und {
		return defaultLocale
	}
	return tag.String()
}
