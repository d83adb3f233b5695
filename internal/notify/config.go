package notify

import (
	"os"
	"strconv"
)

// Config holds desktop notification settings.
type Config struct {
	Enabled   bool
	AppName   string
	Icon      string
	TimeoutMs int32
}

// DefaultConfig returns a Config with notifications enabled.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		AppName:   "stempel",
		Icon:      "appointment-soon",
		TimeoutMs: 5000,
	}
}

// LoadConfig reads notification configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STEMPEL_NOTIFY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		} else if v == "off" {
			cfg.Enabled = false
		}
	}
	if v := os.Getenv("STEMPEL_NOTIFY_ICON"); v != "" {
		cfg.Icon = v
	}
	if v := os.Getenv("STEMPEL_NOTIFY_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = int32(ms)
		}
	}

	return cfg
}
