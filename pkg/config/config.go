package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rcslink-protocol/rcslink-go/pkg/connector"
	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// Config is the controller configuration.
type Config struct {
	// Slot is the logical endpoint the controller serves.
	Slot int `yaml:"slot"`

	// SubscriptionID is the initially associated subscription.
	// Defaults to ims.InvalidSubscriptionID when omitted.
	SubscriptionID int `yaml:"subscriptionId"`

	// Reconnect tunes the connector's retry backoff.
	Reconnect ReconnectConfig `yaml:"reconnect"`

	// EventLog configures event capture.
	EventLog EventLogConfig `yaml:"eventLog"`
}

// ReconnectConfig tunes bind-retry backoff. Zero values fall back to the
// connector package defaults. Delays are integer milliseconds because the
// YAML decoder has no native duration support.
type ReconnectConfig struct {
	// InitialMs is the delay before the first retry, in milliseconds.
	InitialMs int `yaml:"initialMs"`

	// MaxMs is the ceiling for the retry delay, in milliseconds.
	MaxMs int `yaml:"maxMs"`

	// Multiplier is the factor by which the delay grows.
	Multiplier float64 `yaml:"multiplier"`

	// Jitter is the maximum jitter as a fraction of the base delay.
	Jitter float64 `yaml:"jitter"`
}

// Initial returns the initial retry delay.
func (r ReconnectConfig) Initial() time.Duration {
	return time.Duration(r.InitialMs) * time.Millisecond
}

// Max returns the retry delay ceiling.
func (r ReconnectConfig) Max() time.Duration {
	return time.Duration(r.MaxMs) * time.Millisecond
}

// EventLogConfig configures event capture.
type EventLogConfig struct {
	// Path is the CBOR event log file. Empty disables file capture.
	Path string `yaml:"path"`

	// Console mirrors events to the console via slog when true.
	Console bool `yaml:"console"`
}

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Default returns a configuration with defaults applied.
func Default() Config {
	return Config{
		Slot:           0,
		SubscriptionID: ims.InvalidSubscriptionID,
		Reconnect: ReconnectConfig{
			InitialMs:  int(connector.InitialBackoff / time.Millisecond),
			MaxMs:      int(connector.MaxBackoff / time.Millisecond),
			Multiplier: connector.BackoffMultiplier,
			Jitter:     connector.JitterFactor,
		},
	}
}

// Parse parses a configuration from YAML bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Slot < 0 {
		return &ValidationError{Field: "slot", Message: "must not be negative"}
	}
	if c.SubscriptionID < 0 && c.SubscriptionID != ims.InvalidSubscriptionID {
		return &ValidationError{Field: "subscriptionId", Message: "must be a valid subscription or omitted"}
	}
	if c.Reconnect.InitialMs < 0 {
		return &ValidationError{Field: "reconnect.initialMs", Message: "must not be negative"}
	}
	if c.Reconnect.MaxMs < 0 {
		return &ValidationError{Field: "reconnect.maxMs", Message: "must not be negative"}
	}
	if c.Reconnect.MaxMs > 0 && c.Reconnect.InitialMs > c.Reconnect.MaxMs {
		return &ValidationError{Field: "reconnect.initialMs", Message: "must not exceed reconnect.maxMs"}
	}
	if c.Reconnect.Multiplier != 0 && c.Reconnect.Multiplier <= 1 {
		return &ValidationError{Field: "reconnect.multiplier", Message: "must be greater than 1"}
	}
	if c.Reconnect.Jitter < 0 || c.Reconnect.Jitter > 1 {
		return &ValidationError{Field: "reconnect.jitter", Message: "must be between 0 and 1"}
	}
	return nil
}

// BackoffConfig converts the reconnect tuning into the connector's backoff
// configuration.
func (c Config) BackoffConfig() connector.BackoffConfig {
	return connector.BackoffConfig{
		Initial:    c.Reconnect.Initial(),
		Max:        c.Reconnect.Max(),
		Multiplier: c.Reconnect.Multiplier,
		Jitter:     c.Reconnect.Jitter,
	}
}
