// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinequiz/internal/validation"
)

// Rate limit bounds.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateCatalog checks that the selected source has what it needs.
func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=file")
		}
	case SourceHTTP:
		if c.Catalog.URL == "" {
			return fmt.Errorf("CATALOG_URL is required when CATALOG_SOURCE=http")
		}
		if err := validateHTTPURL(c.Catalog.URL, "CATALOG_URL"); err != nil {
			return fmt.Errorf("CATALOG_URL is invalid: %w", err)
		}
	case SourceBadger:
		if c.Catalog.BadgerPath == "" {
			return fmt.Errorf("CATALOG_BADGER_PATH is required when CATALOG_SOURCE=badger")
		}
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxTopN < c.Recommend.TopN {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N (%d) must be >= RECOMMEND_TOP_N (%d)",
			c.Recommend.MaxTopN, c.Recommend.TopN)
	}
	if c.Recommend.Cache.Enabled && c.Recommend.Cache.TTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

// validateSecurity validates rate limiting configuration
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d, got %d",
			minRateLimitRequests, maxRateLimitRequests, c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v, got %v",
			minRateLimitWindow, maxRateLimitWindow, c.Security.RateLimitWindow)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
