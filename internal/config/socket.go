package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

const (
	EnvSocketMaxMessageSize = "SOCKET_MAX_MESSAGE_SIZE"
	EnvSocketWriteTimeout   = "SOCKET_WRITE_TIMEOUT"
	EnvSocketRateLimit      = "SOCKET_RATE_LIMIT"
	EnvSocketBurst          = "SOCKET_BURST"
)

// SocketConfig limits websocket navigation sessions.
type SocketConfig struct {
	// MaxMessageSize is a human-readable size ("4KB") for inbound messages.
	MaxMessageSize string `toml:"max_message_size"`
	WriteTimeout   string `toml:"write_timeout"`

	// RateLimit is the sustained navigations per second allowed per session.
	// Zero in a file means the default; an explicit zero from the
	// environment is rejected.
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`

	maxMessageSizeVal int64
}

// MaxMessageSizeBytes returns the parsed inbound message limit.
func (c *SocketConfig) MaxMessageSizeBytes() int64 {
	return c.maxMessageSizeVal
}

// WriteTimeoutDuration parses the per-message write timeout.
func (c *SocketConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the socket configuration.
func (c *SocketConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SocketConfig) Merge(overlay *SocketConfig) {
	if size, err := units.FromHumanSize(overlay.MaxMessageSize); err == nil {
		c.MaxMessageSize = overlay.MaxMessageSize
		c.maxMessageSizeVal = size
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.RateLimit != 0 {
		c.RateLimit = overlay.RateLimit
	}
	if overlay.Burst != 0 {
		c.Burst = overlay.Burst
	}
}

func (c *SocketConfig) loadDefaults() {
	if c.MaxMessageSize == "" {
		c.MaxMessageSize = "4KB"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "10s"
	}
	if c.RateLimit == 0 {
		c.RateLimit = 10
	}
	if c.Burst == 0 {
		c.Burst = 20
	}
}

func (c *SocketConfig) loadEnv() {
	if v := os.Getenv(EnvSocketMaxMessageSize); v != "" {
		c.MaxMessageSize = v
	}
	if v := os.Getenv(EnvSocketWriteTimeout); v != "" {
		c.WriteTimeout = v
	}
	if v := os.Getenv(EnvSocketRateLimit); v != "" {
		if limit, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit = limit
		}
	}
	if v := os.Getenv(EnvSocketBurst); v != "" {
		if burst, err := strconv.Atoi(v); err == nil {
			c.Burst = burst
		}
	}
}

func (c *SocketConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxMessageSize)
	if err != nil {
		return fmt.Errorf("invalid max_message_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_message_size must be positive")
	}
	c.maxMessageSizeVal = size

	if _, err := time.ParseDuration(c.WriteTimeout); err != nil {
		return fmt.Errorf("invalid write_timeout: %w", err)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	return nil
}
