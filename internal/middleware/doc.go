// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package middleware provides HTTP middleware components for the quiz server.

Key Components:

  - Request ID: UUID-based request tracking, propagated to the logging context
  - Prometheus Metrics: HTTP request/response instrumentation
  - Access Log: one structured log line per request, slow requests at warn

Every middleware has the func(http.Handler) http.Handler shape used by chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(500 * time.Millisecond))

Prometheus labels use the chi route pattern rather than the raw path, so
unknown URLs do not create new series.
*/
package middleware
