// Package generation wraps the external natural-language generation provider
// behind a strict two-field contract. The client builds the prompt, issues a
// single non-retried HTTP call, and validates the response shape: the
// provider must return JSON containing non-empty "spanish_legal_text" and
// "native_user_translation" strings. Extra keys are ignored; a missing key,
// a non-JSON body, or a non-2xx status is a contract violation.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/reclamo-app/go-reclamo-backend/internal/config"
)

// Provider errors. Handlers map any of these to a generic upstream failure;
// the distinction exists for logs and tests.
var (
	// ErrProviderUnavailable covers transport failures and non-success
	// HTTP statuses from the provider.
	ErrProviderUnavailable = errors.New("generation provider unavailable")

	// ErrBadProviderResponse covers unparseable bodies and responses that
	// violate the two-field contract.
	ErrBadProviderResponse = errors.New("generation provider returned an invalid response")
)

var genCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "generation_requests_total",
		Help: "Total calls to the generation provider by outcome.",
	},
	[]string{"outcome"}, // ok | transport_error | bad_status | bad_response
)

func init() { prometheus.MustRegister(genCalls) }

// Result is the validated two-field output of one generation call.
type Result struct {
	SpanishLegalText      string `json:"spanish_legal_text"`
	NativeUserTranslation string `json:"native_user_translation"`
}

// Client calls a chat-completions style endpoint. Safe for concurrent use.
type Client struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a provider client from configuration.
func NewClient(cfg config.GenerationConfig) *Client {
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float32        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate issues exactly one call to the provider and validates the
// two-field contract. There is no retry policy: the call either succeeds
// with a well-formed Result or fails outright.
func (c *Client) Generate(ctx context.Context, locale, factSheet, useCaseHint string) (Result, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemDirective},
			{Role: "user", Content: BuildPrompt(locale, factSheet, useCaseHint)},
		},
		Temperature:    0.2,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("marshal provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		genCalls.WithLabelValues("transport_error").Inc()
		return Result{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		genCalls.WithLabelValues("transport_error").Inc()
		return Result{}, fmt.Errorf("%w: read body: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		genCalls.WithLabelValues("bad_status").Inc()
		log.Warn().Int("status", resp.StatusCode).Msg("generation provider returned non-success status")
		return Result{}, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		genCalls.WithLabelValues("bad_response").Inc()
		return Result{}, fmt.Errorf("%w: %v", ErrBadProviderResponse, err)
	}
	if cr.Error != nil {
		genCalls.WithLabelValues("bad_status").Inc()
		return Result{}, fmt.Errorf("%w: %s", ErrProviderUnavailable, cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		genCalls.WithLabelValues("bad_response").Inc()
		return Result{}, fmt.Errorf("%w: no choices", ErrBadProviderResponse)
	}

	res, err := ParseResult([]byte(cr.Choices[0].Message.Content))
	if err != nil {
		genCalls.WithLabelValues("bad_response").Inc()
		return Result{}, err
	}

	genCalls.WithLabelValues("ok").Inc()
	return res, nil
}

// ParseResult validates raw provider content against the two-field contract.
// Additional keys are ignored, not rejected; a missing or empty required
// field is a hard failure.
func ParseResult(raw []byte) (Result, error) {
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, fmt.Errorf("%w: content is not JSON", ErrBadProviderResponse)
	}
	if strings.TrimSpace(res.SpanishLegalText) == "" {
		return Result{}, fmt.Errorf("%w: missing spanish_legal_text", ErrBadProviderResponse)
	}
	if strings.TrimSpace(res.NativeUserTranslation) == "" {
		return Result{}, fmt.Errorf("%w: missing native_user_translation", ErrBadProviderResponse)
	}
	return res, nil
}

// Generator is the contract consumed by the service layer; satisfied by
// *Client and by test doubles.
type Generator interface {
	Generate(ctx context.Context, locale, factSheet, useCaseHint string) (Result, error)
}

var _ Generator = (*Client)(nil)
