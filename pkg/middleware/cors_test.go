package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/storefront/pkg/middleware"
)

func serveCORS(cfg *middleware.CORSConfig, method, origin string) (*httptest.ResponseRecorder, bool) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/products", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	middleware.CORS(cfg)(handler).ServeHTTP(w, req)
	return w, called
}

func TestCORS_Disabled(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: false, Origins: []string{"http://localhost:3000"}}

	w, _ := serveCORS(cfg, http.MethodGet, "http://localhost:3000")

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers should not be set when disabled")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           7200,
	}

	w, called := serveCORS(cfg, http.MethodGet, "http://localhost:3000")

	if !called {
		t.Error("next handler was not called")
	}

	want := map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:3000",
		"Access-Control-Allow-Methods":     "GET, POST",
		"Access-Control-Allow-Headers":     "Content-Type",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "7200",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:3000"}}

	w, called := serveCORS(cfg, http.MethodGet, "http://evil.com")

	if !called {
		t.Error("next handler was not called")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers should not be set for disallowed origin")
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:3000"}}

	w, called := serveCORS(cfg, http.MethodOptions, "http://localhost:3000")

	if called {
		t.Error("preflight should not reach the next handler")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestCORSConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://localhost:3000, http://localhost:8080")

	cfg := &middleware.CORSConfig{}
	env := &middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled should be true from env")
	}
	if len(cfg.Origins) != 2 {
		t.Errorf("Origins length = %d, want 2", len(cfg.Origins))
	}
	if len(cfg.AllowedMethods) == 0 || len(cfg.AllowedHeaders) == 0 {
		t.Error("methods and headers should have defaults")
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	base := middleware.CORSConfig{Origins: []string{"http://a.com"}, MaxAge: 100}
	base.Merge(&middleware.CORSConfig{Enabled: true, AllowCredentials: true})

	if !base.Enabled || !base.AllowCredentials {
		t.Error("boolean fields should take overlay values")
	}
	if len(base.Origins) != 1 {
		t.Errorf("Origins length = %d, want 1 (nil overlay keeps base)", len(base.Origins))
	}
	if base.MaxAge != 100 {
		t.Errorf("MaxAge = %d, want 100", base.MaxAge)
	}
}
