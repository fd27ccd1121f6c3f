// Package config provides configuration types and helpers for log-tuner.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application-wide configuration.
type Config struct {
	Format     string     `mapstructure:"format"`
	Verbose    bool       `mapstructure:"verbose"`
	Generation Generation `mapstructure:"generation"`
}

// Generation holds the tunable knobs of the regeneration engine.
type Generation struct {
	// MACPoolSize is the number of MAC addresses precomputed per profile
	// instance. Refill picks from this pool instead of generating a fresh
	// address per line.
	MACPoolSize int `mapstructure:"mac_pool_size"`

	// MaxStepMS is the upper bound (inclusive, milliseconds) of the random
	// delta added to the timestamp cursor per generated line.
	MaxStepMS int `mapstructure:"max_step_ms"`

	// Seed seeds the random source. Zero means time-based seeding.
	Seed int64 `mapstructure:"seed"`
}

// Defaults match the constants of the original tool.
const (
	DefaultMACPoolSize = 10000
	DefaultMaxStepMS   = 100
)

// DefaultGeneration returns the generation settings used when no config
// file or flags override them.
func DefaultGeneration() Generation {
	return Generation{
		MACPoolSize: DefaultMACPoolSize,
		MaxStepMS:   DefaultMaxStepMS,
	}
}

// FromViper unmarshals the merged viper configuration (defaults, config
// file, environment, bound flags) into a Config.
func FromViper() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
