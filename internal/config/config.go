// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/recommend"
)

// Catalog source kinds.
const (
	SourceFile   = "file"
	SourceHTTP   = "http"
	SourceBadger = "badger"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Quiz      QuizConfig      `koanf:"quiz"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port    int           `koanf:"port" validate:"gte=1,lte=65535"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment" validate:"oneof=development production"`
}

// CatalogConfig selects where movies.json is loaded from.
type CatalogConfig struct {
	// Source is one of file, http or badger.
	Source string `koanf:"source" validate:"oneof=file http badger"`

	// Path is the movies.json file read by the file source.
	Path string `koanf:"path"`

	// URL is the remote movies.json fetched by the http source.
	URL string `koanf:"url"`

	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// FailureThreshold is the number of consecutive remote failures that
	// opens the circuit breaker.
	FailureThreshold uint32 `koanf:"failure_threshold" validate:"gte=1"`

	// BadgerPath is the snapshot directory read by the badger source.
	BadgerPath string `koanf:"badger_path"`
}

// QuizConfig controls how answers are collected.
type QuizConfig struct {
	// StrictValidation rejects unrecognised choices instead of ignoring them.
	StrictValidation bool `koanf:"strict_validation"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	TopN    int                  `koanf:"top_n" validate:"gte=1"`
	MaxTopN int                  `koanf:"max_top_n" validate:"gte=1"`
	Cache   RecommendCacheConfig `koanf:"cache"`
}

// RecommendCacheConfig configures the result cache.
type RecommendCacheConfig struct {
	Enabled         bool          `koanf:"enabled"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format     string `koanf:"format" validate:"oneof=json console"`
	Caller     bool   `koanf:"caller"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, the optional config file and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoggingSettings converts the logging section for logging.Init.
func (c *Config) LoggingSettings() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	cfg.Output = os.Stdout
	cfg.File = c.Logging.File
	cfg.MaxSizeMB = c.Logging.MaxSizeMB
	cfg.MaxBackups = c.Logging.MaxBackups
	cfg.MaxAgeDays = c.Logging.MaxAgeDays
	return cfg
}

// EngineSettings converts the recommend section for recommend.NewEngine.
func (c *Config) EngineSettings() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Limits.TopN = c.Recommend.TopN
	cfg.Limits.MaxTopN = c.Recommend.MaxTopN
	cfg.Cache.Enabled = c.Recommend.Cache.Enabled
	cfg.Cache.TTL = c.Recommend.Cache.TTL
	cfg.Cache.CleanupInterval = c.Recommend.Cache.CleanupInterval
	return cfg
}

// HTTPSourceSettings converts the catalog section for catalog.NewHTTPSource.
func (c *Config) HTTPSourceSettings() catalog.HTTPSourceConfig {
	return catalog.HTTPSourceConfig{
		URL:              c.Catalog.URL,
		Timeout:          c.Catalog.Timeout,
		FailureThreshold: c.Catalog.FailureThreshold,
	}
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
