package config_test

import (
	"testing"
	"time"

	cfg "github.com/Bandhan203/Practicum-RMS-sub000/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("RMS_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP header/idle/graceful timeouts wrong: %+v", c.HTTP)
	}

	// API
	if c.API.BaseURL != "http://localhost:5000" || c.API.Timeout != 10*time.Second {
		t.Fatalf("API defaults wrong: %+v", c.API)
	}

	// Refresh
	if !c.Refresh.Enabled || c.Refresh.Interval != 30*time.Second {
		t.Fatalf("Refresh defaults wrong: %+v", c.Refresh)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "rms-gateway" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// TestLoadWithPrefix_Overrides — переопределение через окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "RMS_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "11s")
	t.Setenv(p+"_API_BASE_URL", "http://api.internal:5000")
	t.Setenv(p+"_API_TIMEOUT", "2500ms")
	t.Setenv(p+"_REFRESH_ENABLED", "false")
	t.Setenv(p+"_REFRESH_INTERVAL", "1m")
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.GracefulTimeout != 11*time.Second {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.API.BaseURL != "http://api.internal:5000" || c.API.Timeout != 2500*time.Millisecond {
		t.Fatalf("API overrides wrong: %+v", c.API)
	}
	if c.Refresh.Enabled || c.Refresh.Interval != time.Minute {
		t.Fatalf("Refresh overrides wrong: %+v", c.Refresh)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Невалидное значение должно давать ошибку, а не дефолт.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "RMS_TEST_BAD"
	t.Setenv(p+"_API_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
