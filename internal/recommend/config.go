// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid recommend config")

// Config holds the engine configuration.
type Config struct {
	Limits LimitsConfig `koanf:"limits"`
	Cache  CacheConfig  `koanf:"cache"`
}

// LimitsConfig bounds result sizes.
type LimitsConfig struct {
	// TopN is the number of recommendations returned when a request does
	// not ask for a specific count.
	TopN int `koanf:"top_n"`

	// MaxTopN caps the count a request may ask for.
	MaxTopN int `koanf:"max_top_n"`
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	Enabled         bool          `koanf:"enabled"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// DefaultConfig returns the quiz defaults: three recommendations and a
// short-lived result cache.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			TopN:    DefaultTopN,
			MaxTopN: 50,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Limits.TopN <= 0 {
		return fmt.Errorf("%w: limits.top_n must be positive, got %d", ErrInvalidConfig, c.Limits.TopN)
	}
	if c.Limits.MaxTopN < c.Limits.TopN {
		return fmt.Errorf("%w: limits.max_top_n (%d) must be >= limits.top_n (%d)",
			ErrInvalidConfig, c.Limits.MaxTopN, c.Limits.TopN)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("%w: cache.ttl must be positive when cache is enabled", ErrInvalidConfig)
		}
		if c.Cache.CleanupInterval < 0 {
			return fmt.Errorf("%w: cache.cleanup_interval must not be negative", ErrInvalidConfig)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
