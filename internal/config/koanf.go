// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinequiz/config.yaml",
	"/etc/cinequiz/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "production",
		},
		Catalog: CatalogConfig{
			Source:           SourceFile,
			Path:             "movies.json",
			Timeout:          10 * time.Second,
			FailureThreshold: 3,
			BadgerPath:       "data/catalog",
		},
		Quiz: QuizConfig{
			StrictValidation: false, // unknown choices are ignored, as the quiz page does
		},
		Recommend: RecommendConfig{
			TopN:    3,
			MaxTopN: 50,
			Cache: RecommendCacheConfig{
				Enabled:         true,
				TTL:             5 * time.Minute,
				CleanupInterval: 10 * time.Minute,
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Caller:     false,
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources:
//
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CATALOG_URL -> catalog.url
	// RECOMMEND_CACHE_TTL -> recommend.cache.ttl
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the YAML file may already hold a list.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Catalog
	"catalog_source":            "catalog.source",
	"catalog_path":              "catalog.path",
	"catalog_url":               "catalog.url",
	"catalog_timeout":           "catalog.timeout",
	"catalog_failure_threshold": "catalog.failure_threshold",
	"catalog_badger_path":       "catalog.badger_path",

	// Quiz
	"quiz_strict_validation": "quiz.strict_validation",

	// Recommendation engine
	"recommend_top_n":                  "recommend.top_n",
	"recommend_max_top_n":              "recommend.max_top_n",
	"recommend_cache_enabled":          "recommend.cache.enabled",
	"recommend_cache_ttl":              "recommend.cache.ttl",
	"recommend_cache_cleanup_interval": "recommend.cache.cleanup_interval",

	// Logging
	"log_level":        "logging.level",
	"log_format":       "logging.format",
	"log_caller":       "logging.caller",
	"log_file":         "logging.file",
	"log_max_size_mb":  "logging.max_size_mb",
	"log_max_backups":  "logging.max_backups",
	"log_max_age_days": "logging.max_age_days",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_SOURCE -> catalog.source
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// GetKoanfInstance returns a new Koanf instance for advanced usage.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}

// WatchConfigFile calls callback whenever the file at path changes.
// The caller is responsible for synchronising access to any configuration
// it reloads.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}

// ConfigFilePath returns the config file LoadWithKoanf would read, or "".
func ConfigFilePath() string {
	return findConfigFile()
}
