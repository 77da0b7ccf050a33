package logging

import (
	"os"
	"strconv"
)

// Env names the environment variables read by Finalize. Empty names are skipped.
type Env struct {
	Level     string
	Format    string
	AddSource string
}

// DefaultEnv is the mapping used by the service.
var DefaultEnv = &Env{
	Level:     "LOGGING_LEVEL",
	Format:    "LOGGING_FORMAT",
	AddSource: "LOGGING_ADD_SOURCE",
}

// Config is the [logging] section.
type Config struct {
	Level     Level  `toml:"level"`
	Format    Format `toml:"format"`
	AddSource bool   `toml:"add_source"`
}

// Finalize fills defaults, applies env overrides, then validates.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v, ok := lookup(env.Level); ok {
			c.Level = Level(v)
		}
		if v, ok := lookup(env.Format); ok {
			c.Format = Format(v)
		}
		if v, ok := lookup(env.AddSource); ok {
			if on, err := strconv.ParseBool(v); err == nil {
				c.AddSource = on
			}
		}
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge copies the overlay's set fields. AddSource can only be switched on.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.AddSource {
		c.AddSource = true
	}
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := os.Getenv(name)
	return v, v != ""
}
