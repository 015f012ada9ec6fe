package config_test

import (
	"testing"

	"github.com/JaimeStill/storefront/internal/config"
)

func TestAppConfig_Finalize(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		wantErr  bool
	}{
		{"default", "", false},
		{"root", "/", false},
		{"segment", "/shop", false},
		{"trailing slash", "/shop/", true},
		{"relative", "shop", true},
		{"nested", "/shop/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.AppConfig{BasePath: tt.basePath}
			err := cfg.Finalize()
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAppConfig_Merge(t *testing.T) {
	base := &config.AppConfig{BasePath: "/", Brand: "DS Catalog"}
	base.Merge(&config.AppConfig{Brand: "Other"})

	if base.BasePath != "/" {
		t.Errorf("BasePath = %q, want %q", base.BasePath, "/")
	}
	if base.Brand != "Other" {
		t.Errorf("Brand = %q, want %q", base.Brand, "Other")
	}
}

func TestAPIConfig_Finalize(t *testing.T) {
	cfg := &config.APIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, "/api")
	}
	if cfg.MaxBodySizeBytes() != 1<<20 {
		t.Errorf("MaxBodySizeBytes() = %d, want %d", cfg.MaxBodySizeBytes(), 1<<20)
	}
	if cfg.Pagination.DefaultPageSize == 0 {
		t.Error("Pagination.DefaultPageSize not set to default")
	}
	if cfg.OpenAPI.Title == "" {
		t.Error("OpenAPI.Title not set to default")
	}
}

func TestAPIConfig_Merge(t *testing.T) {
	base := &config.APIConfig{BasePath: "/api", MaxBodySize: "1MB"}
	base.Merge(&config.APIConfig{MaxBodySize: "2MB"})

	if base.BasePath != "/api" {
		t.Errorf("BasePath = %q, want %q", base.BasePath, "/api")
	}
	if base.MaxBodySize != "2MB" {
		t.Errorf("MaxBodySize = %q, want %q", base.MaxBodySize, "2MB")
	}
}
