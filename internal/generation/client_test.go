package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/reclamo-app/go-reclamo-backend/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.GenerationConfig{
		URL:     url,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func chatBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatBody(`{"spanish_legal_text":"Estimados señores...","native_user_translation":"Dear sirs..."}`)))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Generate(context.Background(), "en", "Applicant full name: Jane Doe", "Contract cancellation")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.SpanishLegalText != "Estimados señores..." {
		t.Errorf("SpanishLegalText = %q", res.SpanishLegalText)
	}
	if res.NativeUserTranslation != "Dear sirs..." {
		t.Errorf("NativeUserTranslation = %q", res.NativeUserTranslation)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %q", gotReq.ResponseFormat.Type)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("unexpected message layout: %+v", gotReq.Messages)
	}
}

func TestGenerate_ExtraKeysIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatBody(`{"spanish_legal_text":"a","native_user_translation":"b","confidence":0.9,"notes":"x"}`)))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Generate(context.Background(), "en", "facts", "")
	if err != nil {
		t.Fatalf("extra keys must not fail the contract: %v", err)
	}
	if res.SpanishLegalText != "a" || res.NativeUserTranslation != "b" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestGenerate_MissingFieldIsContractViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatBody(`{"spanish_legal_text":"only one"}`)))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "en", "facts", "")
	if !errors.Is(err, ErrBadProviderResponse) {
		t.Fatalf("want ErrBadProviderResponse, got %v", err)
	}
}

func TestGenerate_NonJSONContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatBody("I am sorry, I cannot help with that.")))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "en", "facts", "")
	if !errors.Is(err, ErrBadProviderResponse) {
		t.Fatalf("want ErrBadProviderResponse, got %v", err)
	}
}

func TestGenerate_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "en", "facts", "")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv.URL).Generate(context.Background(), "en", "facts", "")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerate_ProviderErrorObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth_error"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "en", "facts", "")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}

func TestParseResult(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"both fields", `{"spanish_legal_text":"a","native_user_translation":"b"}`, false},
		{"empty spanish", `{"spanish_legal_text":"","native_user_translation":"b"}`, true},
		{"whitespace spanish", `{"spanish_legal_text":"   ","native_user_translation":"b"}`, true},
		{"missing translation", `{"spanish_legal_text":"a"}`, true},
		{"not json", `plain text`, true},
		{"extra keys", `{"spanish_legal_text":"a","native_user_translation":"b","x":1}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResult([]byte(tc.raw))
			if tc.wantErr && !errors.Is(err, ErrBadProviderResponse) {
				t.Fatalf("want ErrBadProviderResponse, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildPrompt_CarriesFactsAndLocale(t *testing.T) {
	p := BuildPrompt("de", "Applicant full name: Jane Doe", "Traffic fine appeal")
	for _, want := range []string{"de", "Applicant full name: Jane Doe", "Traffic fine appeal"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
}
