package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"helloworld-api/internal/config"
)

func testConfig(backend string) *config.Config {
	cfg := config.Default()
	cfg.Environment = "test"
	cfg.Log.Level = "panic"
	cfg.Store.Backend = backend
	return cfg
}

// TestNewContainer verifies that the container can be created for every backend
func TestNewContainer(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			container, err := NewContainer(testConfig(backend))
			if err != nil {
				t.Fatalf("Failed to create container: %v", err)
			}

			if container.Services == nil {
				t.Fatal("Services is nil")
			}
			if err := container.Services.Validate(); err != nil {
				t.Errorf("Services invalid: %v", err)
			}
			if container.Router == nil {
				t.Error("Router is nil")
			}

			if err := container.Close(); err != nil {
				t.Errorf("Failed to close container: %v", err)
			}
		})
	}
}

func TestNewContainer_Errors(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Error("expected error for nil config")
	}

	if _, err := NewContainer(testConfig("redis")); err == nil {
		t.Error("expected error for unsupported backend")
	}
}

// TestContainer_ObjectRoundTrip exercises the router against each store backend
func TestContainer_ObjectRoundTrip(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			container, err := NewContainer(testConfig(backend))
			if err != nil {
				t.Fatalf("Failed to create container: %v", err)
			}
			defer container.Close()

			put := httptest.NewRequest(http.MethodPut, "/objects/greeting", strings.NewReader(`{"text":"hi"}`))
			put.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			container.Router.ServeHTTP(w, put)
			if w.Code != http.StatusOK || w.Body.String() != "null" {
				t.Fatalf("PUT = %d %q, want 200 null", w.Code, w.Body.String())
			}

			w = httptest.NewRecorder()
			container.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/objects/greeting", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("GET status = %d, want 200", w.Code)
			}
			if got, want := w.Body.String(), `{"greeting":{"text":"hi"}}`; got != want {
				t.Errorf("GET body = %s, want %s", got, want)
			}
		})
	}
}

func TestContainer_Metrics(t *testing.T) {
	cfg := testConfig("memory")
	cfg.Metrics.Enabled = true

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	w := httptest.NewRecorder()
	container.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "helloworld_http_objects_stored 0") {
		t.Errorf("object gauge missing from metrics output")
	}

	cfg = testConfig("memory")
	cfg.Metrics.Enabled = false
	disabled, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer disabled.Close()

	w = httptest.NewRecorder()
	disabled.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /metrics with metrics disabled = %d, want 404", w.Code)
	}
}
