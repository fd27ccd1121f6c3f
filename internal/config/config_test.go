package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultGeneration(t *testing.T) {
	got := DefaultGeneration()

	if got.MACPoolSize != DefaultMACPoolSize {
		t.Errorf("MACPoolSize = %d, want %d", got.MACPoolSize, DefaultMACPoolSize)
	}
	if got.MaxStepMS != DefaultMaxStepMS {
		t.Errorf("MaxStepMS = %d, want %d", got.MaxStepMS, DefaultMaxStepMS)
	}
	if got.Seed != 0 {
		t.Errorf("Seed = %d, want 0 (time-based)", got.Seed)
	}
}

func TestFromViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("format", "json")
	viper.Set("verbose", true)
	viper.Set("generation.mac_pool_size", 256)
	viper.Set("generation.max_step_ms", 50)
	viper.Set("generation.seed", int64(1234))

	cfg, err := FromViper()
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.Generation.MACPoolSize != 256 {
		t.Errorf("MACPoolSize = %d, want 256", cfg.Generation.MACPoolSize)
	}
	if cfg.Generation.MaxStepMS != 50 {
		t.Errorf("MaxStepMS = %d, want 50", cfg.Generation.MaxStepMS)
	}
	if cfg.Generation.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Generation.Seed)
	}
}

func TestFromViperEmpty(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := FromViper()
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if cfg.Generation.MACPoolSize != 0 {
		t.Errorf("MACPoolSize = %d, want 0 (callers fall back to defaults)", cfg.Generation.MACPoolSize)
	}
}
