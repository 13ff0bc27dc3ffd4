// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinequiz/internal/logging"
)

// AccessLog logs one line per request. Requests slower than slowThreshold
// are logged at warn level; a zero threshold disables the distinction.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case slowThreshold > 0 && duration > slowThreshold:
				event = logger.Warn().Bool("slow", true)
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int("bytes", wrapper.bytes).
				Dur("duration", duration).
				Msg("HTTP request")
		})
	}
}
