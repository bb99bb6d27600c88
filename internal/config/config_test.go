package config

import (
	"reflect"
	"testing"
	"time"
)

// --- MustLoad ---

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose") // invalid -> Load() error
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

// --- Load success + normalization + parsing ---

func TestLoad_Success_DefaultsAndOverrides(t *testing.T) {
	// Server timeouts / sizes (valid)
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // will normalize to "release"

	// Logging / Docs
	t.Setenv("LOG_LEVEL", "warning") // will normalize to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")

	// App
	t.Setenv("DB_PATH", "db.sqlite")
	t.Setenv("PRICE_CENTS", "999")

	// Payments
	t.Setenv("MOCK_PAYMENTS_ENABLED", "true")

	// Rate limiting (invalid int falls back to the default)
	t.Setenv("RATE_LIMIT", "x") // -> default 5
	t.Setenv("RATE_WINDOW", "30m")

	// Generation provider
	t.Setenv("GENERATION_URL", "https://provider.example/v1/chat/completions")
	t.Setenv("GENERATION_API_KEY", "sk-test")
	t.Setenv("GENERATION_MODEL", "test-model")
	t.Setenv("GENERATION_TIMEOUT", "90s")

	// Web protection
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")

	// OTEL
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" || cfg.ReadTimeout != 2*time.Second || cfg.MaxHeaderBytes != 8192 {
		t.Errorf("server settings not honored: %+v", cfg)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want normalized release", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want normalized warn", cfg.LogLevel)
	}
	if !cfg.LogPretty || !cfg.SwaggerEnabled {
		t.Errorf("boolean parsing failed: %+v", cfg)
	}
	if cfg.DBPath != "db.sqlite" || cfg.PriceCents != 999 {
		t.Errorf("app settings not honored: %+v", cfg)
	}
	if !cfg.MockPaymentsEnabled {
		t.Error("MOCK_PAYMENTS_ENABLED=true not honored")
	}
	if cfg.RateLimit != 5 {
		t.Errorf("invalid RATE_LIMIT must fall back to 5, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow != 30*time.Minute {
		t.Errorf("RateWindow = %v", cfg.RateWindow)
	}
	if cfg.Generation.URL != "https://provider.example/v1/chat/completions" ||
		cfg.Generation.APIKey != "sk-test" ||
		cfg.Generation.Model != "test-model" ||
		cfg.Generation.Timeout != 90*time.Second {
		t.Errorf("generation settings not honored: %+v", cfg.Generation)
	}
	if want := []string{"https://a.com", "http://b"}; !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Errorf("security settings not honored: %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Errorf("otel settings not honored: %+v", cfg.OTEL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port default = %q", cfg.Port)
	}
	if cfg.PriceCents != 499 {
		t.Errorf("PriceCents default = %d", cfg.PriceCents)
	}
	if cfg.MockPaymentsEnabled {
		t.Error("mock payments must default to disabled")
	}
	if cfg.RateLimit != 5 || cfg.RateWindow != time.Hour {
		t.Errorf("rate defaults = %d per %v", cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.Generation.Model == "" || cfg.Generation.URL == "" {
		t.Errorf("generation defaults missing: %+v", cfg.Generation)
	}
	if cfg.Generation.Timeout != 120*time.Second {
		t.Errorf("Generation.Timeout default = %v", cfg.Generation.Timeout)
	}
}

// --- Validation failures ---

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"zero read timeout", "READ_TIMEOUT", "0s"},
		{"negative price", "PRICE_CENTS", "-1"},
		{"zero rate window", "RATE_WINDOW", "0s"},
		{"zero generation timeout", "GENERATION_TIMEOUT", "0s"},
		{"sample ratio out of range", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() should fail with %s=%s", tc.key, tc.val)
			}
		})
	}
}
