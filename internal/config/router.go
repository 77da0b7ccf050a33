package config

import (
	"os"
	"strconv"

	"github.com/JaimeStill/country-app/pkg/router"
)

const (
	EnvRouterHistory       = "ROUTER_HISTORY"
	EnvRouterBase          = "ROUTER_BASE"
	EnvRouterCaseSensitive = "ROUTER_CASE_SENSITIVE"
)

// RouterConfig selects how navigation locations are carried in URLs.
// CaseSensitive is nil when unset, so an overlay can turn it off again.
type RouterConfig struct {
	History       router.HistoryMode `toml:"history"`
	Base          string             `toml:"base"`
	CaseSensitive *bool              `toml:"case_sensitive"`
}

// MatchCase reports whether route matching is case-sensitive.
func (c *RouterConfig) MatchCase() bool {
	return c.CaseSensitive != nil && *c.CaseSensitive
}

// Finalize applies defaults, loads environment overrides, and validates the router configuration.
func (c *RouterConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.History.Validate()
}

// Merge applies values from overlay configuration that are set.
func (c *RouterConfig) Merge(overlay *RouterConfig) {
	if overlay.History != "" {
		c.History = overlay.History
	}
	if overlay.Base != "" {
		c.Base = overlay.Base
	}
	if overlay.CaseSensitive != nil {
		sensitive := *overlay.CaseSensitive
		c.CaseSensitive = &sensitive
	}
}

func (c *RouterConfig) loadDefaults() {
	if c.History == "" {
		c.History = router.HistoryHash
	}
	if c.Base == "" {
		c.Base = "/"
	}
}

func (c *RouterConfig) loadEnv() {
	if v := os.Getenv(EnvRouterHistory); v != "" {
		c.History = router.HistoryMode(v)
	}
	if v := os.Getenv(EnvRouterBase); v != "" {
		c.Base = v
	}
	if v := os.Getenv(EnvRouterCaseSensitive); v != "" {
		if sensitive, err := strconv.ParseBool(v); err == nil {
			c.CaseSensitive = &sensitive
		}
	}
}
