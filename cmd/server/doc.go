// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package main is the entry point for the Cinequiz server.

The server renders the five-question movie quiz, scores every catalog movie
against the submitted answers and shows the top recommendations. The same
scoring is available as a JSON API.

# Application Architecture

	RootSupervisor ("cinequiz")
	├── DataSupervisor ("data-layer")
	│   └── Catalog loader (file, http or badger source; runs once)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output and optional file rotation
 3. Catalog source and holder
 4. Recommendation engine with result cache
 5. HTTP handlers, router and middleware
 6. Supervisor tree

The HTTP server starts before the catalog has loaded. Until the load
finishes /api/v1/health/ready answers 503; a failed load leaves the quiz
running with the catalog-unavailable message.

# Configuration

	HTTP_PORT=8080
	CATALOG_SOURCE=file           # file, http or badger
	CATALOG_PATH=movies.json
	CATALOG_URL=https://example.com/movies.json
	CATALOG_BADGER_PATH=data/catalog
	QUIZ_STRICT_VALIDATION=false
	RECOMMEND_TOP_N=3
	LOG_LEVEL=info
	LOG_FORMAT=json

See internal/config for the full list. When a config file is in use, edits
to logging.level take effect without a restart.

# Signals

SIGINT and SIGTERM cancel the supervisor tree; the HTTP server drains
in-flight requests for up to ten seconds.
*/
package main
