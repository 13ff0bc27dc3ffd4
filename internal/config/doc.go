// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package config provides centralized configuration management for Cinequiz.

# Configuration Sources

Configuration is layered with koanf, each layer overriding the previous one:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else the first of DefaultConfigPaths that exists
 3. Environment variables, through an explicit mapping table

# Environment Variables

Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: production)

Catalog (CatalogConfig):
  - CATALOG_SOURCE: file, http or badger (default: file)
  - CATALOG_PATH: movies.json path for the file source (default: movies.json)
  - CATALOG_URL: movies.json URL for the http source
  - CATALOG_TIMEOUT: Remote fetch timeout (default: 10s)
  - CATALOG_FAILURE_THRESHOLD: Failures before the breaker opens (default: 3)
  - CATALOG_BADGER_PATH: Snapshot directory for the badger source (default: data/catalog)

Quiz (QuizConfig):
  - QUIZ_STRICT_VALIDATION: Reject unrecognised choices (default: false)

Recommendations (RecommendConfig):
  - RECOMMEND_TOP_N: Default number of results (default: 3)
  - RECOMMEND_MAX_TOP_N: Upper bound for a requested limit (default: 50)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_CLEANUP_INTERVAL

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - LOG_FILE: Rotating log file, disabled when empty
  - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	logging.Init(cfg.LoggingSettings())
*/
package config
