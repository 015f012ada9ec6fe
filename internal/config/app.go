package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig configures the storefront pages module.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	Brand    string `toml:"brand"`
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return validateBasePath(c.BasePath)
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Brand != "" {
		c.Brand = overlay.Brand
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.Brand == "" {
		c.Brand = "DS Catalog"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv("APP_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("APP_BRAND"); v != "" {
		c.Brand = v
	}
}

// validateBasePath accepts "/" or a single segment such as "/api", the
// prefixes a module can be mounted at.
func validateBasePath(p string) error {
	if p == "/" {
		return nil
	}
	if !strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/") || strings.Count(p, "/") != 1 {
		return fmt.Errorf("invalid base_path %q: must be \"/\" or a single segment like \"/api\"", p)
	}
	return nil
}
