package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env names the variables that override Config.
type Env struct {
	Level     string
	Format    string
	AddSource string
}

// Config selects the slog handler. Level and Format are case-insensitive;
// AddSource records the caller's file and line on every entry.
type Config struct {
	Level     Level  `toml:"level"`
	Format    Format `toml:"format"`
	AddSource bool   `toml:"add_source"`
}

// Finalize fills defaults, applies env and validates.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}

	c.Level = Level(strings.ToLower(string(c.Level)))
	c.Format = Format(strings.ToLower(string(c.Format)))
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge takes every non-empty overlay value. AddSource always follows the
// overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	c.AddSource = overlay.AddSource
}

func (c *Config) loadEnv(env *Env) error {
	if v := os.Getenv(env.Level); env.Level != "" && v != "" {
		c.Level = Level(v)
	}
	if v := os.Getenv(env.Format); env.Format != "" && v != "" {
		c.Format = Format(v)
	}
	if v := os.Getenv(env.AddSource); env.AddSource != "" && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env.AddSource, err)
		}
		c.AddSource = b
	}
	return nil
}
